package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"vendorhub/internal/handler"
)

// Register wires routes and middleware.
func Register(e *echo.Echo, vendorHandler *handler.VendorHandler) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Vendor routes. The token gate lives in the handlers: bad tokens
	// still answer HTTP 200 with a failure envelope.
	api.POST("/vendor/add", vendorHandler.Add)
	api.PUT("/vendor/update", vendorHandler.Update)
	api.GET("/vendor/list", vendorHandler.List)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
