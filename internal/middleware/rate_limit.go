package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/response"
)

const rateLimitWindow = time.Minute

// RateLimiter counts requests per client IP in fixed one-minute windows stored in Redis.
type RateLimiter struct {
	client *redis.Client
	limit  int
	prefix string
	logger *zap.Logger
}

// NewRateLimiter creates a RateLimiter allowing limit requests per minute.
func NewRateLimiter(client *redis.Client, limit int, prefix string, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{client: client, limit: limit, prefix: prefix, logger: logger}
}

// Allow increments the caller's counter and reports whether it is within the
// limit, plus the time until the window resets.
func (l *RateLimiter) Allow(ctx context.Context, clientID string) (bool, time.Duration, error) {
	window := time.Now().Unix() / int64(rateLimitWindow.Seconds())
	key := fmt.Sprintf("%s:%s:%d", l.prefix, clientID, window)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rateLimitWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, 0, err
	}

	resetIn := time.Until(time.Unix((window+1)*int64(rateLimitWindow.Seconds()), 0))
	return incr.Val() <= int64(l.limit), resetIn, nil
}

// Middleware rejects requests over the limit with 429. Redis failures let
// the request through.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, resetIn, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			l.logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(resetIn.Seconds())+1))
			response.TooManyRequests(c, "Too many requests, please retry later")
			return
		}
		c.Next()
	}
}
