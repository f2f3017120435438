package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/application"
	"github.com/Kilat-Pet-Delivery/service-quote/internal/response"
)

// PlaceHandler handles location autocomplete and lookup.
type PlaceHandler struct {
	service *application.LocationService
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(service *application.LocationService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

// RegisterRoutes registers place routes.
func (h *PlaceHandler) RegisterRoutes(r *gin.RouterGroup, limit gin.HandlerFunc) {
	places := r.Group("/api/v1/places")
	if limit != nil {
		places.Use(limit)
	}
	{
		places.GET("/autocomplete", h.Autocomplete)
		places.GET("/:placeId", h.GetPlace)
	}
}

// Autocomplete handles GET /api/v1/places/autocomplete?input=.
func (h *PlaceHandler) Autocomplete(c *gin.Context) {
	result, err := h.service.Search(c.Request.Context(), c.Query("input"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetPlace handles GET /api/v1/places/:placeId.
func (h *PlaceHandler) GetPlace(c *gin.Context) {
	result, err := h.service.Resolve(c.Request.Context(), c.Param("placeId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
