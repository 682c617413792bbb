package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string `validate:"required"`
	MySQLDSN    string `validate:"required"`
	RedisAddr   string `validate:"required"`
	RedisDB     int
	RedisPass   string
	JWTSecret   string `validate:"required"`
	TokenHeader string `validate:"required"`
	UploadDir   string `validate:"required"`
	SelfURL     string `validate:"required,url"`
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/app?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		TokenHeader: getEnv("TOKEN_HEADER", "x-access-token"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		SelfURL:     getEnv("SELF_URL", "http://localhost:8080"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
