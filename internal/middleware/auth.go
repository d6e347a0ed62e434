package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"wastesense-backend/internal/token"
	"wastesense-backend/pkg/utils"
)

type contextKey string

const ClaimsContextKey contextKey = "claims"

// Auth validates the bearer token on protected routes and adds the decoded
// claims to the request context. A missing or malformed Authorization
// header is 401; any verification failure is 403 with the specific reason
// (signature, expiry, shape) logged server-side only.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("❌ AUTH: no authorization header for %s %s", r.Method, r.URL.Path)
				utils.RespondError(w, http.StatusUnauthorized, "Authorization required. Bearer token missing.")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Printf("❌ AUTH: invalid authorization header format (parts: %d)", len(parts))
				utils.RespondError(w, http.StatusUnauthorized, "Invalid authentication scheme. Bearer token required.")
				return
			}

			claims, err := token.Verify(parts[1], secret)
			if err != nil {
				log.Printf("❌ AUTH: token verification failed: %v", err)
				utils.RespondError(w, http.StatusForbidden, "Invalid token or expired token.")
				return
			}

			log.Printf("✅ AUTH: authenticated subject %v for %s %s", claims["sub"], r.Method, r.URL.Path)

			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts the verified token claims from the request
// context. ok is false outside an Auth-protected route.
func ClaimsFromContext(r *http.Request) (map[string]interface{}, bool) {
	claims, ok := r.Context().Value(ClaimsContextKey).(map[string]interface{})
	return claims, ok
}
