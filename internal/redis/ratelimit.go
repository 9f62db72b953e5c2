package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig contains configuration for rate limiting
type RateLimitConfig struct {
	Limit  int           // Max requests per window
	Window time.Duration // Fixed window length
}

// RateLimiter is a fixed-window counter stored in Redis.
type RateLimiter struct {
	client *goredis.Client
	config RateLimitConfig
}

// RateLimitResult contains the result of a rate limit check
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
	Limit     int
}

func NewRateLimiter(client *goredis.Client, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		client: client,
		config: config,
	}
}

// increments the counter, starts the window on the first hit, returns {count, ttl}
var fixedWindowScript = goredis.NewScript(`
	local current = redis.call('INCR', KEYS[1])
	if current == 1 then
		redis.call('EXPIRE', KEYS[1], ARGV[1])
	end
	local ttl = redis.call('TTL', KEYS[1])
	if ttl < 0 then
		redis.call('EXPIRE', KEYS[1], ARGV[1])
		ttl = tonumber(ARGV[1])
	end
	return {current, ttl}
`)

// Allow counts one request for client under scope. Keys look like
// ratelimit:{scope}:{client}, e.g. ratelimit:contact:203.0.113.7.
func (r *RateLimiter) Allow(ctx context.Context, scope, client string) (*RateLimitResult, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", scope, client)
	window := int(r.config.Window.Seconds())

	result, err := fixedWindowScript.Run(ctx, r.client, []string{key}, window).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}
	if len(result) < 2 {
		return nil, fmt.Errorf("unexpected rate limit result format")
	}

	count := int(result[0])
	remaining := r.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &RateLimitResult{
		Allowed:   count <= r.config.Limit,
		Remaining: remaining,
		ResetIn:   time.Duration(result[1]) * time.Second,
		Limit:     r.config.Limit,
	}, nil
}
