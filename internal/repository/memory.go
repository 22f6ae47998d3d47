package repository

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryRateLimiter is the in-process fallback limiter. Each key gets its own
// token bucket refilled at limit/window with a burst of limit.
type MemoryRateLimiter struct {
	limiters sync.Map
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{}
}

func (r *MemoryRateLimiter) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	val, ok := r.limiters.Load(key)
	if !ok {
		limiter := rate.NewLimiter(rate.Every(window/time.Duration(limit)), limit)
		val, _ = r.limiters.LoadOrStore(key, limiter)
	}
	return val.(*rate.Limiter).Allow(), nil
}
