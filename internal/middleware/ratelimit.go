package middleware

import (
	"log"
	"net"
	"net/http"
	"time"

	"wastesense-backend/internal/ratelimit"
	"wastesense-backend/pkg/utils"
)

// RateLimit applies the sliding-window limiter to every request, keyed by
// client IP. It runs before any route-specific authentication; a denied
// request never reaches its handler.
func RateLimit(limiter *ratelimit.Limiter, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := clientAddr(r)

			if !limiter.Allow(clientIP, limit, window) {
				log.Printf("⚠️  Rate limit exceeded for IP: %s (%s %s)", clientIP, r.Method, r.URL.Path)
				utils.RespondError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientAddr returns the request's client IP. chi's RealIP middleware has
// already rewritten RemoteAddr from X-Forwarded-For / X-Real-IP when the
// service runs behind a proxy.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
