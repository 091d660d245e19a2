package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/ordertrack/pkg/auth"
	"github.com/shashiranjanraj/ordertrack/pkg/response"
)

type claimsKey struct{}

// ClaimsFromCtx returns the session claims stored by Auth, or nil when the
// request was not authenticated.
func ClaimsFromCtx(ctx context.Context) *auth.Claims {
	c, _ := ctx.Value(claimsKey{}).(*auth.Claims)
	return c
}

// Auth is the session gate: it requires a valid bearer token before any data
// operation. A missing or invalid token yields 401; the client treats that
// as "no session" and redirects to the login view.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveIfAuthed(w, r, next, bearerToken(r))
	})
}

// AuthQuery is the gate for the socket route. The browser WebSocket API
// cannot set request headers, so the token may also arrive as ?token=.
// The Authorization header still wins when both are present.
func AuthQuery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		serveIfAuthed(w, r, next, token)
	})
}

func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func serveIfAuthed(w http.ResponseWriter, r *http.Request, next http.Handler, token string) {
	if token == "" {
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		response.Error(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	ctx := context.WithValue(r.Context(), claimsKey{}, claims)
	next.ServeHTTP(w, r.WithContext(ctx))
}
