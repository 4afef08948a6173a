package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/zenova/gamehub-backend/internal/config"
)

// NewTokenBucket returns a Redis-backed token-bucket limiter keyed by
// authenticated user and route. Score submission is the only endpoint a
// client can profitably flood, so the limiter is mounted there. The
// bucket state lives in Redis so limits hold across instances; the Lua
// script keeps read-refill-consume atomic. When no Redis client is
// available the middleware is a pass-through.
func NewTokenBucket(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	limiter := redis.NewScript(`
		local key = KEYS[1]
		local now_ms = tonumber(ARGV[1])
		local capacity = tonumber(ARGV[2])
		local refill_tokens = tonumber(ARGV[3])
		local interval_ms = tonumber(ARGV[4])
		local ttl_seconds = tonumber(ARGV[5])

		local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
		local tokens = tonumber(state[1])
		local last_refill = tonumber(state[2])
		if tokens == nil then
			tokens = capacity
			last_refill = now_ms
		end

		local elapsed = now_ms - last_refill
		if elapsed >= interval_ms then
			local intervals = math.floor(elapsed / interval_ms)
			tokens = math.min(capacity, tokens + intervals * refill_tokens)
			last_refill = last_refill + intervals * interval_ms
		end

		local allowed = 0
		if tokens >= 1 then
			tokens = tokens - 1
			allowed = 1
		end

		redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
		redis.call('EXPIRE', key, ttl_seconds)
		return {allowed, tokens}
	`)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			who := c.RealIP()
			if uid, ok := c.Get(CtxUserID).(uint64); ok && uid != 0 {
				who = fmt.Sprintf("u%d", uid)
			}
			key := fmt.Sprintf("%s:%s:%s", cfg.Prefix, who, c.Path())

			res, err := limiter.Run(c.Request().Context(), rdb, []string{key},
				time.Now().UnixMilli(),
				cfg.Capacity,
				cfg.RefillTokens,
				cfg.RefillInterval.Milliseconds(),
				int(cfg.TTL.Seconds()),
			).Int64Slice()
			if err != nil || len(res) < 1 {
				// Redis trouble must not take the endpoint down.
				return next(c)
			}
			if res[0] != 1 {
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
