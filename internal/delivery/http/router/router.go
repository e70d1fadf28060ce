// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sakny/internal/delivery/http/middleware"
	"sakny/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProfileHandler  *handler.ProfileHandler
	LocationHandler *handler.LocationHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	locationHandler *handler.LocationHandler

	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		profileHandler:      params.ProfileHandler,
		locationHandler:     params.LocationHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")

	// Auth routes
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/authenticate", r.authHandler.Authenticate)
	}

	// Static location reference data, no authentication required
	locationGroup := v1.Group("/locations")
	{
		locationGroup.GET("/governorates", r.locationHandler.ListGovernorates)
		locationGroup.GET("/governorates/:id/cities", r.locationHandler.ListCities)
	}

	// Profile routes require authentication
	profileGroup := v1.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.POST("", r.profileHandler.Create)
		profileGroup.GET("", r.profileHandler.Get)
		profileGroup.PUT("", r.profileHandler.Update)
		profileGroup.GET("/:userId", r.profileHandler.GetByUserID)
		profileGroup.POST("/photo", r.profileHandler.UploadPhoto)
		profileGroup.DELETE("/photo", r.profileHandler.DeletePhoto)
	}
}
