package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Raptors65/hack404/internal/auth"
	"github.com/Raptors65/hack404/pkg/apierror"
	"github.com/Raptors65/hack404/pkg/logger"
)

type contextKey string

const userContextKey contextKey = "user"

// AuthMiddleware rejects requests without a valid bearer token and stores
// the resolved identity in the request context.
func AuthMiddleware(validator auth.TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				WriteError(w, apierror.New("UNAUTHORIZED", "Missing or invalid authorization header", http.StatusUnauthorized))
				return
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			identity, err := validator.Validate(r.Context(), tokenString)
			if err != nil {
				logger.Log.WithError(err).Warn("Token validation failed")
				WriteError(w, apierror.New("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized))
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext returns the authenticated identity, or nil when the
// request did not pass through AuthMiddleware.
func GetUserFromContext(ctx context.Context) *auth.Identity {
	identity, _ := ctx.Value(userContextKey).(*auth.Identity)
	return identity
}
