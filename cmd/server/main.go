package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"vendorhub/docs"
	"vendorhub/internal/auth"
	"vendorhub/internal/cache"
	"vendorhub/internal/config"
	"vendorhub/internal/db"
	"vendorhub/internal/handler"
	"vendorhub/internal/model"
	"vendorhub/internal/repository"
	"vendorhub/internal/router"
	"vendorhub/internal/service"
	"vendorhub/internal/storage"
)

// @title VendorHub API
// @version 1.0
// @description Vendor management API with token-guarded registration, update, and listing.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-access-token
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Vendor{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	tokenValidator := auth.NewValidator(jwtService, tokenStore)

	// Initialize storage, repository, service, handler
	imageStore, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("image store: %v", err)
	}
	vendorRepo := repository.NewVendorRepository(gormDB)
	vendorService := service.NewVendorService(vendorRepo, imageStore, cfg.SelfURL)
	vendorHandler := handler.NewVendorHandler(vendorService, tokenValidator, cfg.TokenHeader)

	// Register routes
	router.Register(e, vendorHandler)

	// Swagger serves against the public host when one is configured.
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	log.Printf("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
