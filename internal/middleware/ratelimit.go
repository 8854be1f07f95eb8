package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/config"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
)

// RateLimit is a fixed window counter per client IP and route, kept in Redis.
// A nil client or a Redis error lets the request through.
func RateLimit(rdb *redis.Client, cfg config.RateLimitConfig, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || !cfg.Enabled || cfg.Requests <= 0 {
			c.Next()
			return
		}

		window := cfg.Window
		if window <= 0 {
			window = time.Minute
		}
		key := fmt.Sprintf("rl:%s:%s:%d", c.FullPath(), NormalizeIP(c.ClientIP()), windowBucket(time.Now(), window))

		ctx := c.Request.Context()
		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		remaining := int64(cfg.Requests) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.Requests) {
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(window)))
			httperr.Abort(c, http.StatusTooManyRequests, "rate_limited", "Too many requests, try again later.")
			return
		}
		c.Next()
	}
}

// windowBucket numbers fixed windows of any positive length, sub-second included.
func windowBucket(now time.Time, window time.Duration) int64 {
	return now.UnixNano() / int64(window)
}

func retryAfterSeconds(window time.Duration) int {
	return int(math.Ceil(window.Seconds()))
}
