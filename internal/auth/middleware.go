package auth

import (
	"context"
	"net/http"
	"strings"
)

// contextKey is unexported so other packages can't collide with our
// context values.
type contextKey string

const tokenKey contextKey = "github_token"

// RequireToken extracts the Authorization bearer token into the request
// context, rejecting requests without one. The token is GitHub's, not
// ours — no validation happens here beyond presence; GitHub rejects bad
// tokens on the first API call.
func RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header || token == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized","message":"authorization token required"}`))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), tokenKey, token)))
	})
}

// TokenFromContext returns the bearer token stored by RequireToken.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
