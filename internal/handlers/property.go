package handlers

import (
	"net/http"

	"hypergo-properties/internal/middleware"
	"hypergo-properties/internal/models"
	"hypergo-properties/internal/services"
	"hypergo-properties/internal/utils"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	listings *services.PropertyService
	search   *services.PropertySearchService
}

func NewPropertyHandler(listings *services.PropertyService, search *services.PropertySearchService) *PropertyHandler {
	return &PropertyHandler{listings: listings, search: search}
}

// SearchProperties godoc
// @Summary Search listings
// @Description Filtered, sorted and paginated listing search. Unknown or malformed filters are ignored.
// @Tags Properties
// @Produce json
// @Param category query string false "Bungalow, Apartment, Villa, House or Plot"
// @Param minPrice query number false "Lower price bound"
// @Param maxPrice query number false "Upper price bound"
// @Param amenities query string false "Pipe-separated amenities, any may match"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(25)
// @Success 200 {object} models.SearchResult
// @Router /properties [get]
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	params := c.Request.URL.Query()
	result, cached, err := h.search.Search(c.Request.Context(), params)
	if err != nil {
		c.Error(err)
		return
	}

	setCacheHeader(c, cached)
	if link := utils.LinkHeader(c.Request.URL.Path, result.Page, result.Limit, result.TotalPages, params); link != "" {
		c.Header("Link", link)
	}
	c.JSON(http.StatusOK, result)
}

// GetProperty godoc
// @Summary Get a listing
// @Description Accepts the public id (PROP...) or the internal id.
// @Tags Properties
// @Produce json
// @Param id path string true "Public or internal id"
// @Success 200 {object} models.PropertyResponse
// @Failure 404 {object} map[string]interface{}
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	property, err := h.listings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	var input models.PropertyInput
	if !bindJSON(c, &input) {
		return
	}

	property, err := h.listings.Create(c.Request.Context(), userID, &input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	var patch models.PropertyPatch
	if !bindJSON(c, &patch) {
		return
	}

	property, err := h.listings.Update(c.Request.Context(), userID, c.Param("id"), &patch)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.listings.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
