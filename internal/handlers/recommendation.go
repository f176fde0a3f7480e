package handlers

import (
	"net/http"

	"hypergo-properties/internal/middleware"
	"hypergo-properties/internal/models"
	"hypergo-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recommendations *services.RecommendationService
}

func NewRecommendationHandler(recommendations *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

// SearchUser looks up a recipient by the email query parameter.
func (h *RecommendationHandler) SearchUser(c *gin.Context) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	user, err := h.recommendations.SearchUser(c.Request.Context(), userID, c.Query("email"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *RecommendationHandler) Recommend(c *gin.Context) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	var req models.RecommendRequest
	if !bindJSON(c, &req) {
		return
	}

	rec, err := h.recommendations.Create(c.Request.Context(), userID, c.Param("propertyId"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *RecommendationHandler) Received(c *gin.Context) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	recs, cached, err := h.recommendations.Received(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	setCacheHeader(c, cached)
	c.JSON(http.StatusOK, gin.H{"recommendations": recs, "count": len(recs)})
}

func (h *RecommendationHandler) Sent(c *gin.Context) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	recs, cached, err := h.recommendations.Sent(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	setCacheHeader(c, cached)
	c.JSON(http.StatusOK, gin.H{"recommendations": recs, "count": len(recs)})
}

func (h *RecommendationHandler) MarkViewed(c *gin.Context) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	rec, err := h.recommendations.MarkViewed(c.Request.Context(), userID, c.Param("recommendationId"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *RecommendationHandler) DeleteRecommendation(c *gin.Context) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.recommendations.Delete(c.Request.Context(), userID, c.Param("recommendationId")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
