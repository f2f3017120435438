package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/application"
	"github.com/Kilat-Pet-Delivery/service-quote/internal/response"
)

// WarehouseHandler handles HTTP requests for the warehouse catalog.
type WarehouseHandler struct {
	service *application.WarehouseService
}

// NewWarehouseHandler creates a new WarehouseHandler.
func NewWarehouseHandler(service *application.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{service: service}
}

// RegisterRoutes registers warehouse routes.
func (h *WarehouseHandler) RegisterRoutes(r *gin.RouterGroup) {
	warehouses := r.Group("/api/v1/warehouses")
	{
		warehouses.POST("", h.CreateWarehouse)
		warehouses.GET("", h.ListWarehouses)
		warehouses.GET("/:id", h.GetWarehouse)
	}
}

// CreateWarehouse handles POST /api/v1/warehouses.
func (h *WarehouseHandler) CreateWarehouse(c *gin.Context) {
	var req application.CreateWarehouseRequest
	if msg, ok := bindJSON(c, &req); !ok {
		response.BadRequest(c, msg)
		return
	}

	result, err := h.service.CreateWarehouse(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListWarehouses handles GET /api/v1/warehouses.
func (h *WarehouseHandler) ListWarehouses(c *gin.Context) {
	page, limit := parsePagination(c)

	result, err := h.service.ListWarehouses(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.PaginatedSuccess(c, result.Items, result.Total, result.Page, result.Limit)
}

// GetWarehouse handles GET /api/v1/warehouses/:id.
func (h *WarehouseHandler) GetWarehouse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid warehouse ID")
		return
	}

	result, err := h.service.GetWarehouse(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
