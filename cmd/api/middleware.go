package main

import (
	"time"

	"hypergo-properties/internal/middleware"
	"hypergo-properties/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// configure all middleware for the router
func (a *App) setupMiddleware() {
	// CORS middleware
	a.Router.Use(setupCORS(a.Config))

	// Other middleware
	a.Router.Use(middleware.RequestID())
	a.Router.Use(middleware.MetricsMiddleware())
	a.Router.Use(middleware.LoggingMiddleware())
	a.Router.Use(middleware.SecureHeaders())
	// Recovery sits inside ErrorHandler so panics get the error envelope.
	a.Router.Use(middleware.ErrorHandler())
	a.Router.Use(middleware.Recovery())
	a.Router.Use(middleware.RateLimitMiddleware(a.RateLimiter))
}

// configure CORS middleware
func setupCORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction() {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With", middleware.HeaderRequestID}
	corsConfig.ExposeHeaders = []string{"Content-Length", "Link", middleware.HeaderCache, middleware.HeaderRequestID}
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}
