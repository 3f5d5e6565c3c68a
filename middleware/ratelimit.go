package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Limiter counts hits per key inside a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// NewLimiter uses redis when a client is given so limits hold across
// instances, and an in-process counter otherwise.
func NewLimiter(client *redis.Client, limit int, window time.Duration) Limiter {
	if client == nil {
		return NewLocalLimiter(limit, window)
	}
	return &RedisLimiter{client: client, limit: limit, window: window}
}

type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	key = "ratelimit:" + key

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("rate limit: %w", err)
		}
	}

	retryAfter, err := l.client.TTL(ctx, key).Result()
	if err == nil && retryAfter < 0 {
		// key lost its expiry; never let it block forever
		_ = l.client.Expire(ctx, key, l.window).Err()
	}
	if err != nil || retryAfter <= 0 {
		retryAfter = l.window
	}
	return count <= int64(l.limit), retryAfter, nil
}

const maxLocalRateKeys = 10000

type LocalLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	now    func() time.Time
	states map[string]*localRateState
}

type localRateState struct {
	count   int
	resetAt time.Time
}

func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	return &LocalLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		states: make(map[string]*localRateState),
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.states[key]
	if !ok || !now.Before(state.resetAt) {
		if len(l.states) >= maxLocalRateKeys {
			l.sweep(now)
		}
		state = &localRateState{resetAt: now.Add(l.window)}
		l.states[key] = state
	}

	if state.count >= l.limit {
		return false, state.resetAt.Sub(now), nil
	}

	state.count++
	return true, state.resetAt.Sub(now), nil
}

func (l *LocalLimiter) sweep(now time.Time) {
	for key, state := range l.states {
		if !now.Before(state.resetAt) {
			delete(l.states, key)
		}
	}
}

// RateLimit limits a route per client IP under the given scope. A limiter
// error lets the request through.
func RateLimit(limiter Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter, err := limiter.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if err != nil {
			log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable")
			c.Next()
			return
		}
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, please try again later"})
			return
		}
		c.Next()
	}
}
