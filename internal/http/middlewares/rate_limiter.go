package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/session"
)

// KeyFunc picks the bucket a request is counted against.
type KeyFunc func(c echo.Context) string

// SessionOrIPKey counts logged-in browsers per session cookie and everyone
// else per client IP.
func SessionOrIPKey(c echo.Context) string {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		return "session:" + cookie.Value
	}
	return "ip:" + c.RealIP()
}

func RateLimiter(limit int, window time.Duration, keyFunc KeyFunc) echo.MiddlewareFunc {
	type bucket struct {
		count int
		start time.Time
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
	)

	if keyFunc == nil {
		keyFunc = func(c echo.Context) string { return c.RealIP() }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := keyFunc(c)

			mu.Lock()
			for k, b := range buckets {
				if now.Sub(b.start) > window {
					delete(buckets, k)
				}
			}

			b, ok := buckets[key]
			if !ok {
				b = &bucket{start: now}
				buckets[key] = b
			}

			if b.count >= limit {
				mu.Unlock()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			b.count++
			mu.Unlock()

			return next(c)
		}
	}
}
