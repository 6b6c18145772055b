package middleware

import (
	"net/http"

	"github.com/Raptors65/hack404/internal/services"
)

// SyncIdentityMiddleware mirrors the authenticated identity into the local
// users collection so that email lookups and display names resolve without
// calling the identity provider again. Runs after AuthMiddleware.
func SyncIdentityMiddleware(userService *services.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := GetUserFromContext(r.Context())
			if identity != nil {
				_ = userService.SyncIdentity(r.Context(), identity)
			}
			next.ServeHTTP(w, r)
		})
	}
}
