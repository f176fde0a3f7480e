package main

import (
	"hypergo-properties/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupOperationalRoutes()
	a.setupAPIRoutes()
}

func (a *App) setupOperationalRoutes() {
	a.Router.GET("/health", a.HealthHandler.Health)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		// Public routes
		api.POST("/auth/register", a.UserHandler.Register)
		api.POST("/auth/login", a.UserHandler.Login)
		api.GET("/properties", a.PropertyHandler.SearchProperties)
		api.GET("/properties/:id", a.PropertyHandler.GetProperty)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.Config.JWT.Secret))
		{
			protected.POST("/properties", a.PropertyHandler.CreateProperty)
			protected.PUT("/properties/:id", a.PropertyHandler.UpdateProperty)
			protected.DELETE("/properties/:id", a.PropertyHandler.DeleteProperty)

			favorites := protected.Group("/favorites")
			favorites.GET("", a.FavoriteHandler.ListFavorites)
			favorites.POST("/:propertyId", a.FavoriteHandler.AddFavorite)
			favorites.DELETE("/:propertyId", a.FavoriteHandler.RemoveFavorite)
			favorites.GET("/check/:propertyId", a.FavoriteHandler.CheckFavorite)

			recommendations := protected.Group("/recommendations")
			recommendations.GET("/search-user", a.RecommendationHandler.SearchUser)
			recommendations.POST("/:propertyId", a.RecommendationHandler.Recommend)
			recommendations.GET("/received", a.RecommendationHandler.Received)
			recommendations.GET("/sent", a.RecommendationHandler.Sent)
			recommendations.PATCH("/:recommendationId/view", a.RecommendationHandler.MarkViewed)
			recommendations.DELETE("/:recommendationId", a.RecommendationHandler.DeleteRecommendation)
		}
	}
}
