package controller

import (
	"gig-marketplace-api/internal/security"
	"gig-marketplace-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, tokens *security.TokenProvider, corsOrigins []string) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	handler.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     corsOrigins,
		AllowCredentials: true,
	}))

	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newAuthRoutesHandler(api, services, validate, tokens)
	newGigRoutesHandler(api, services, validate, tokens)
	newBidRoutesHandler(api, services, validate, tokens)
}
