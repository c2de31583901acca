/**
 * @description
 * Rate limiting middleware to prevent abuse of the reference-data API.
 * Uses a simple in-memory token bucket per client IP.
 *
 * @dependencies
 * - sync: For thread-safe operations
 * - time: For time-based rate limiting
 * - net/http: For HTTP middleware
 */
package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// rateLimiter tracks a token bucket per client key.
type rateLimiter struct {
	capacity   int
	refillRate time.Duration

	mu      sync.Mutex
	buckets map[string]*tokenBucket
}

type tokenBucket struct {
	tokens     int
	lastRefill time.Time
}

func newRateLimiter(capacity int, refillRate time.Duration) *rateLimiter {
	rl := &rateLimiter{
		capacity:   capacity,
		refillRate: refillRate,
		buckets:    make(map[string]*tokenBucket),
	}
	go rl.cleanupExpiredBuckets()
	return rl
}

// allow reports whether a request from the given key may proceed.
func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	bucket, exists := rl.buckets[key]
	if !exists {
		bucket = &tokenBucket{tokens: rl.capacity, lastRefill: time.Now()}
		rl.buckets[key] = bucket
	}

	now := time.Now()
	refill := int(now.Sub(bucket.lastRefill) / rl.refillRate)
	if refill > 0 {
		bucket.tokens += refill
		if bucket.tokens > rl.capacity {
			bucket.tokens = rl.capacity
		}
		bucket.lastRefill = now
	}

	if bucket.tokens > 0 {
		bucket.tokens--
		return true
	}
	return false
}

// cleanupExpiredBuckets removes idle buckets to prevent unbounded growth.
func (rl *rateLimiter) cleanupExpiredBuckets() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, bucket := range rl.buckets {
			if now.Sub(bucket.lastRefill) > 10*time.Minute {
				delete(rl.buckets, key)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit creates a middleware allowing roughly requestsPerMinute requests
// per client IP.
func RateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	rate := requestsPerMinute / 60
	if rate < 1 {
		rate = 1
	}
	limiter := newRateLimiter(rate*2, time.Second/time.Duration(rate))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.allow(clientIP(r)) {
				http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the client IP from the request, preferring proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.IndexByte(xff, ','); idx >= 0 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndexByte(ip, ':'); idx >= 0 {
		return ip[:idx]
	}
	return ip
}
