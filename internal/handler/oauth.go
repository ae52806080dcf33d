package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/rs/xid"
)

// OAuthProvider is the slice of the GitHub OAuth flow this handler needs.
type OAuthProvider interface {
	Configured() bool
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
}

// OAuthHandler relays the GitHub OAuth flow: it hands the client the
// authorization URL, then exchanges the callback code and passes the
// resulting token back via redirect. The token is never stored server-side.
type OAuthHandler struct {
	provider  OAuthProvider
	clientURL string
	logger    *slog.Logger
}

func NewOAuthHandler(provider OAuthProvider, clientURL string, logger *slog.Logger) *OAuthHandler {
	return &OAuthHandler{provider: provider, clientURL: clientURL, logger: logger}
}

// HandleAuthorize returns the GitHub authorization URL for the client to
// navigate to.
//
// GET /api/github/oauth/authorize
func (h *OAuthHandler) HandleAuthorize(w http.ResponseWriter, r *http.Request) {
	if !h.provider.Configured() {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "oauth_unconfigured",
			Message: "GitHub OAuth is not configured",
		})
		return
	}

	state := xid.New().String()
	writeJSON(w, http.StatusOK, map[string]string{
		"authUrl": h.provider.AuthURL(state),
	})
}

// HandleCallback exchanges the authorization code and redirects the browser
// back to the client app with the token (or an error marker) in the query.
//
// GET /api/github/oauth/callback?code=...
func (h *OAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		h.redirectError(w, r, "no_code")
		return
	}

	token, err := h.provider.ExchangeCode(r.Context(), code)
	if err != nil {
		h.logger.Warn("oauth code exchange failed", slog.String("error", err.Error()))
		h.redirectError(w, r, "oauth_failed")
		return
	}
	if token == "" {
		h.redirectError(w, r, "no_token")
		return
	}

	http.Redirect(w, r, h.clientURL+"/dashboard?token="+url.QueryEscape(token), http.StatusFound)
}

func (h *OAuthHandler) redirectError(w http.ResponseWriter, r *http.Request, reason string) {
	http.Redirect(w, r, h.clientURL+"?error="+reason, http.StatusFound)
}
