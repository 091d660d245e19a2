package middleware

import (
	"net/http"

	"github.com/shashiranjanraj/ordertrack/config"
	"github.com/shashiranjanraj/ordertrack/pkg/response"
)

// AdminOnly restricts a route to accounts on the ADMIN_EMAILS allow-list.
// Must run after Auth so the session claims are in the context.
// The email comparison is case-insensitive.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromCtx(r.Context())
		if claims == nil {
			response.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if !config.IsAdminEmail(claims.Email) {
			response.Error(w, http.StatusForbidden, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
