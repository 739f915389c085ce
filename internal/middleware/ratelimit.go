package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/fantravel1/cheapretreats-sub001/internal/model"
)

// RateLimiter implements per-client token bucket rate limiting
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rate    int           // Requests per window
	window  time.Duration // Time window
	burst   int           // Extra requests allowed on top of rate
	cleanup time.Duration // Cleanup interval for idle buckets
	now     func() time.Time
}

type bucket struct {
	tokens float64
	last   time.Time
}

// RateLimitConfig holds rate limiter configuration
type RateLimitConfig struct {
	Rate    int           // Requests per window (default 120)
	Window  time.Duration // Time window (default 1 minute)
	Burst   int           // Max burst (default 30)
	Cleanup time.Duration // Cleanup interval (default 5 minutes)
}

// NewRateLimiter creates a new rate limiter. Idle buckets are only evicted
// while Run is active.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Rate <= 0 {
		cfg.Rate = 120
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.Burst < 0 {
		cfg.Burst = 0
	} else if cfg.Burst == 0 {
		cfg.Burst = 30
	}
	if cfg.Cleanup <= 0 {
		cfg.Cleanup = 5 * time.Minute
	}

	return &RateLimiter{
		buckets: make(map[string]*bucket),
		rate:    cfg.Rate,
		window:  cfg.Window,
		burst:   cfg.Burst,
		cleanup: cfg.Cleanup,
		now:     time.Now,
	}
}

// Run evicts idle buckets until ctx is cancelled.
func (rl *RateLimiter) Run(ctx context.Context) error {
	ticker := time.NewTicker(rl.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-ctx.Done():
			return nil
		}
	}
}

func (rl *RateLimiter) capacity() float64 {
	return float64(rl.rate + rl.burst)
}

func (rl *RateLimiter) cleanupExpired() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.window * 2)
	for key, b := range rl.buckets {
		if b.last.Before(cutoff) {
			delete(rl.buckets, key)
		}
	}
}

// Allow takes one token from key's bucket. It returns whether the request
// may proceed, the whole tokens left and when the bucket is next full.
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, resetTime time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, exists := rl.buckets[key]
	if !exists {
		b = &bucket{tokens: rl.capacity(), last: now}
		rl.buckets[key] = b
	} else {
		perToken := float64(rl.window) / float64(rl.rate)
		b.tokens += float64(now.Sub(b.last)) / perToken
		if b.tokens > rl.capacity() {
			b.tokens = rl.capacity()
		}
		b.last = now
	}

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}

	missing := rl.capacity() - b.tokens
	resetTime = now.Add(time.Duration(missing * float64(rl.window) / float64(rl.rate)))
	return allowed, int(b.tokens), resetTime
}

// clientKey identifies the caller by remote IP, dropping the port.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit returns a middleware that applies rate limiting per client IP
func RateLimit(limiter *RateLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, remaining, resetTime := limiter.Allow(clientKey(r))

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.rate))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

			if !allowed {
				perToken := limiter.window / time.Duration(limiter.rate)
				retryAfter := int(perToken.Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

				model.NewRateLimitError(retryAfter).WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
