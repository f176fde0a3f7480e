package handlers

import (
	"net/http"

	"hypergo-properties/internal/middleware"
	"hypergo-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favorites *services.FavoriteService
}

func NewFavoriteHandler(favorites *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	favorites, cached, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	setCacheHeader(c, cached)
	c.JSON(http.StatusOK, gin.H{"favorites": favorites, "count": len(favorites)})
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	favorite, err := h.favorites.Add(c.Request.Context(), userID, c.Param("propertyId"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.favorites.Remove(c.Request.Context(), userID, c.Param("propertyId")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FavoriteHandler) CheckFavorite(c *gin.Context) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	check, cached, err := h.favorites.Check(c.Request.Context(), userID, c.Param("propertyId"))
	if err != nil {
		c.Error(err)
		return
	}
	setCacheHeader(c, cached)
	c.JSON(http.StatusOK, check)
}
