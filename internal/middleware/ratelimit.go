package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"r6-tracker/internal/apierrors"
)

// RateLimiter is an in-process fixed-window counter keyed by client
// address. The window is one second; the counter map is reset whenever a
// new window starts.
type RateLimiter struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	windowStart time.Time
	counts      map[string]int
	now         func() time.Time
}

func NewRateLimiter(limit int) *RateLimiter {
	return &RateLimiter{
		limit:  limit,
		window: time.Second,
		counts: make(map[string]int),
		now:    time.Now,
	}
}

// Allow records one request for the key and reports whether it is within
// the current window's limit.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.windowStart) >= l.window {
		l.windowStart = now
		l.counts = make(map[string]int)
	}

	l.counts[key]++
	return l.counts[key] <= l.limit
}

// RateLimit rejects clients that exceed the per-second request limit.
func RateLimit(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				key = r.RemoteAddr
			}

			if !limiter.Allow(key) {
				apierrors.Write(w, apierrors.TooManyRequests())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
