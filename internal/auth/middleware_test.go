package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireToken(t *testing.T) {
	var captured string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = TokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/github/contributions/octocat", nil)
		rr := httptest.NewRecorder()

		RequireToken(inner).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"unauthorized","message":"authorization token required"}`, rr.Body.String())
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc123")
		rr := httptest.NewRecorder()

		RequireToken(inner).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("bearer token lands in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer gho_abc123")
		rr := httptest.NewRecorder()

		RequireToken(inner).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "gho_abc123", captured)
	})
}

func TestGitHubProvider(t *testing.T) {
	t.Run("unconfigured without client id", func(t *testing.T) {
		assert.False(t, NewGitHubProvider("", "", "").Configured())
	})

	t.Run("auth url carries client id and state", func(t *testing.T) {
		p := NewGitHubProvider("client123", "secret", "http://localhost:8080/api/github/oauth/callback")
		assert.True(t, p.Configured())

		url := p.AuthURL("state-xyz")
		assert.Contains(t, url, "client_id=client123")
		assert.Contains(t, url, "state=state-xyz")
		assert.Contains(t, url, "github.com/login/oauth/authorize")
	})
}
