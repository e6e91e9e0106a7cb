package utils

import (
	"sync"
	"time"
)

// RateLimiter is a per-user flood guard for the prefix transport. This
// is separate from the economy cooldowns: it only stops command spam
// from hammering the store.
type RateLimiter struct {
	limits map[string]*userLimit
	mu     sync.Mutex

	window time.Duration
	max    int
}

type userLimit struct {
	windowStart time.Time
	count       int
}

// NewRateLimiter allows max commands per user per window.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limits: make(map[string]*userLimit),
		window: window,
		max:    max,
	}
}

// Allow reports whether the user may execute another command now.
func (rl *RateLimiter) Allow(userID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	limit, exists := rl.limits[userID]
	if !exists || now.Sub(limit.windowStart) >= rl.window {
		rl.limits[userID] = &userLimit{windowStart: now, count: 1}
		return true
	}
	if limit.count >= rl.max {
		return false
	}
	limit.count++
	return true
}
