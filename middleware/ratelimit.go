package middleware

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ariebrainware/hospital-api/config"
	"github.com/ariebrainware/hospital-api/util"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	defaultRateLimit  = 60
	defaultRateWindow = time.Minute
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

func (cfg RateLimitConfig) withDefaults() RateLimitConfig {
	if cfg.Limit <= 0 {
		cfg.Limit = defaultRateLimit
	}
	if cfg.Window <= 0 {
		cfg.Window = defaultRateWindow
	}
	return cfg
}

// RateLimiter counts requests per route and client IP in fixed windows kept
// in Redis and answers 429 once Limit is exceeded. Without Redis, or when
// Redis fails, every request is let through.
func RateLimiter(cfg RateLimitConfig) gin.HandlerFunc {
	cfg = cfg.withDefaults()
	limit := strconv.Itoa(cfg.Limit)

	return func(c *gin.Context) {
		rdb := config.GetRedisClient()
		if rdb == nil {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		path := c.Request.URL.Path
		count, err := hitWindow(c.Request.Context(), rdb, rateLimitKey(path, clientIP), cfg.Window)
		if err != nil {
			util.Logger().Warn().Err(err).Str("remote_ip", clientIP).Str("path", path).Msg("rate limit check failed, allowing request")
			c.Next()
			return
		}

		remaining := int64(cfg.Limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.Limit) {
			c.Header("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
			util.CallTooManyRequests(c, util.APIErrorParams{
				Msg: "Too many requests. Please try again later.",
				Err: errors.New("rate limit exceeded"),
			})
			return
		}
		c.Next()
	}
}

func rateLimitKey(path, clientIP string) string {
	return fmt.Sprintf("ratelimit:%s:%s", path, clientIP)
}

// hitWindow records one request against key and returns how many the
// current window has seen. Each hit pushes the expiry out by window.
func hitWindow(ctx context.Context, rdb *redis.Client, key string, window time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("count requests for %s: %w", key, err)
	}
	return incr.Val(), nil
}

// ResetRateLimit clears the counter of one client on one path.
func ResetRateLimit(ctx context.Context, clientIP, path string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return errors.New("redis not available")
	}
	return rdb.Del(ctx, rateLimitKey(path, clientIP)).Err()
}
