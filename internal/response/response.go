// Package response writes the {success, data, message, details} envelope
// shared by every endpoint.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain"
)

const (
	msgInternal = "Internal server error"
	msgUpstream = "Failed to get directions from provider"

	loggerKey = "logger"
)

// Envelope is the JSON body of every response.
type Envelope struct {
	Success bool            `json:"success"`
	Data    interface{}     `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}

// Paginated wraps a page of items.
type Paginated struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

// SetLogger stores the request logger used by Error. Middleware calls it once per request.
func SetLogger(c *gin.Context, logger *zap.Logger) {
	c.Set(loggerKey, logger)
}

func requestLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}

// Success writes 200 with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes 201 with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// PaginatedSuccess writes 200 with a page of items.
func PaginatedSuccess(c *gin.Context, items interface{}, total int64, page, limit int) {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	Success(c, Paginated{Items: items, Total: total, Page: page, Limit: limit, TotalPages: totalPages})
}

// BadRequest writes 400 with message.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Envelope{Success: false, Message: message})
}

// NotFound writes 404 with message.
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, Envelope{Success: false, Message: message})
}

// TooManyRequests writes 429 with message.
func TooManyRequests(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Envelope{Success: false, Message: message})
}

// InternalError writes 500 with the generic message.
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Envelope{Success: false, Message: msgInternal})
}

// Error maps err onto a status code and envelope. Only validation and
// not-found messages and the provider's own diagnostic payload reach the
// caller; everything else is logged and reported generically.
func Error(c *gin.Context, err error) {
	var (
		validation *domain.ValidationError
		notFound   *domain.NotFoundError
		upstream   *domain.UpstreamError
	)

	switch {
	case errors.As(err, &validation):
		BadRequest(c, validation.Message)
	case errors.As(err, &notFound):
		NotFound(c, notFound.Error())
	case errors.As(err, &upstream):
		requestLogger(c).Error("upstream provider failure", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, Envelope{
			Success: false,
			Message: msgUpstream,
			Details: upstream.Details,
		})
	default:
		requestLogger(c).Error("unhandled error", zap.Error(err))
		InternalError(c)
	}
}
