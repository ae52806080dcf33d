// Package auth implements the GitHub OAuth relay. The server exchanges the
// authorization code for an access token and hands the token straight back
// to the client; it never stores it or mints sessions of its own.
package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

// GitHubProvider wraps golang.org/x/oauth2 for the GitHub Authorization
// Code flow.
type GitHubProvider struct {
	config *oauth2.Config
}

// NewGitHubProvider creates a provider from registered OAuth App
// credentials. callbackURL must match the app's configured callback
// exactly. read:org is requested so the dashboard can show organization
// memberships.
func NewGitHubProvider(clientID, clientSecret, callbackURL string) *GitHubProvider {
	return &GitHubProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"read:user", "user:email", "read:org"},
			Endpoint:     github.Endpoint,
		},
	}
}

// Configured reports whether OAuth credentials were supplied at startup.
func (p *GitHubProvider) Configured() bool {
	return p.config.ClientID != ""
}

// AuthURL returns the GitHub authorization page URL for the given CSRF
// state value.
func (p *GitHubProvider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// ExchangeCode trades an authorization code for the user's access token.
// The token is returned raw; relaying it to the client is the caller's job.
func (p *GitHubProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchanging oauth code: %w", err)
	}
	return token.AccessToken, nil
}
