package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/ordertrack/pkg/auth"
	"github.com/shashiranjanraj/ordertrack/pkg/middleware"
)

func claimsEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if middleware.ClaimsFromCtx(r.Context()) == nil {
			t.Error("claims missing from request context")
		}
		w.WriteHeader(http.StatusOK)
	})
}

func sessionToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(1, "staff@example.com", "staff")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func TestAuthQueryAcceptsQueryToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ws/orders?token="+sessionToken(t), nil)
	rec := httptest.NewRecorder()

	middleware.AuthQuery(claimsEcho(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestAuthQueryPrefersHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ws/orders?token=garbage", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t))
	rec := httptest.NewRecorder()

	middleware.AuthQuery(claimsEcho(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestAuthQueryRejectsMissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ws/orders", nil)
	rec := httptest.NewRecorder()

	middleware.AuthQuery(claimsEcho(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthQueryRejectsInvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ws/orders?token=not-a-jwt", nil)
	rec := httptest.NewRecorder()

	middleware.AuthQuery(claimsEcho(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthIgnoresQueryToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/orders?token="+sessionToken(t), nil)
	rec := httptest.NewRecorder()

	middleware.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
