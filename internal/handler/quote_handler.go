package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/application"
	"github.com/Kilat-Pet-Delivery/service-quote/internal/response"
)

// QuoteHandler handles HTTP requests for delivery quotes.
type QuoteHandler struct {
	service *application.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(service *application.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// RegisterRoutes registers all quote routes on the given router group.
func (h *QuoteHandler) RegisterRoutes(r *gin.RouterGroup, limit gin.HandlerFunc) {
	handlers := []gin.HandlerFunc{h.CalculateQuote}
	if limit != nil {
		handlers = append([]gin.HandlerFunc{limit}, handlers...)
	}

	quotes := r.Group("/api/v1/quotes")
	{
		quotes.POST("", handlers...)
		quotes.GET("/config", h.GetConfig)
	}

	// Legacy path still called by the web frontend.
	r.POST("/api/calculate-delivery", handlers...)
}

// CalculateQuote handles POST /api/v1/quotes.
func (h *QuoteHandler) CalculateQuote(c *gin.Context) {
	var req application.QuoteRequest
	if msg, ok := bindJSON(c, &req); !ok {
		response.BadRequest(c, msg)
		return
	}

	result, err := h.service.CalculateQuote(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetConfig handles GET /api/v1/quotes/config.
func (h *QuoteHandler) GetConfig(c *gin.Context) {
	response.Success(c, h.service.Config())
}
