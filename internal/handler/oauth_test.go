package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karn-cyber/RepoRecommendation/internal/handler"
)

type mockProvider struct {
	configured   bool
	authURL      string
	token        string
	exchangeErr  error
	capturedCode string
}

func (m *mockProvider) Configured() bool            { return m.configured }
func (m *mockProvider) AuthURL(state string) string { return m.authURL + "&state=" + state }

func (m *mockProvider) ExchangeCode(_ context.Context, code string) (string, error) {
	m.capturedCode = code
	return m.token, m.exchangeErr
}

const clientURL = "http://localhost:5173"

func TestHandleAuthorize(t *testing.T) {
	t.Run("returns the authorization url", func(t *testing.T) {
		provider := &mockProvider{configured: true, authURL: "https://github.com/login/oauth/authorize?client_id=abc"}
		h := handler.NewOAuthHandler(provider, clientURL, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/github/oauth/authorize", nil)
		rr := httptest.NewRecorder()
		h.HandleAuthorize(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var res map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Contains(t, res["authUrl"], "github.com/login/oauth/authorize")
		assert.Contains(t, res["authUrl"], "state=")
	})

	t.Run("unconfigured returns 500", func(t *testing.T) {
		h := handler.NewOAuthHandler(&mockProvider{configured: false}, clientURL, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/github/oauth/authorize", nil)
		rr := httptest.NewRecorder()
		h.HandleAuthorize(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestHandleCallback(t *testing.T) {
	t.Run("redirects to dashboard with the token", func(t *testing.T) {
		provider := &mockProvider{configured: true, token: "gho_secret123"}
		h := handler.NewOAuthHandler(provider, clientURL, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/github/oauth/callback?code=abc123", nil)
		rr := httptest.NewRecorder()
		h.HandleCallback(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, clientURL+"/dashboard?token=gho_secret123", rr.Header().Get("Location"))
		assert.Equal(t, "abc123", provider.capturedCode)
	})

	t.Run("missing code redirects with error marker", func(t *testing.T) {
		h := handler.NewOAuthHandler(&mockProvider{configured: true}, clientURL, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/github/oauth/callback", nil)
		rr := httptest.NewRecorder()
		h.HandleCallback(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, clientURL+"?error=no_code", rr.Header().Get("Location"))
	})

	t.Run("failed exchange redirects with error marker", func(t *testing.T) {
		provider := &mockProvider{configured: true, exchangeErr: errors.New("bad code")}
		h := handler.NewOAuthHandler(provider, clientURL, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/github/oauth/callback?code=bad", nil)
		rr := httptest.NewRecorder()
		h.HandleCallback(rr, req)

		assert.Equal(t, clientURL+"?error=oauth_failed", rr.Header().Get("Location"))
	})

	t.Run("empty token redirects with error marker", func(t *testing.T) {
		provider := &mockProvider{configured: true, token: ""}
		h := handler.NewOAuthHandler(provider, clientURL, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/github/oauth/callback?code=abc", nil)
		rr := httptest.NewRecorder()
		h.HandleCallback(rr, req)

		assert.Equal(t, clientURL+"?error=no_token", rr.Header().Get("Location"))
	})
}
