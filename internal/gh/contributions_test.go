package gh

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karn-cyber/RepoRecommendation/internal/apperror"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetchSnapshot(t *testing.T) {
	t.Run("relays the caller's token and formats the payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer gho_test", r.Header.Get("Authorization"))

			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), "contributionsCollection")

			io.WriteString(w, `{
				"data": {
					"user": {
						"login": "octocat",
						"name": "Mona Lisa",
						"followers": {"totalCount": 12},
						"repositories": {
							"totalCount": 1,
							"nodes": [{"name": "hello", "stargazerCount": 7, "primaryLanguage": {"name": "Go"}}]
						}
					}
				}
			}`)
		}))
		defer srv.Close()

		svc := NewServiceWithEndpoint(testLogger(), srv.URL)
		snapshot, err := svc.FetchSnapshot(context.Background(), "octocat", "gho_test")
		require.NoError(t, err)

		assert.Equal(t, "octocat", snapshot.Username)
		assert.Equal(t, 12, snapshot.Followers)
		assert.Equal(t, 7, snapshot.Stats.TotalStars)
		require.Len(t, snapshot.Languages, 1)
		assert.Equal(t, "Go", snapshot.Languages[0].Name)
	})

	t.Run("unresolvable user maps to not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{
				"data": null,
				"errors": [{"message": "Could not resolve to a User with the login of 'nobody'."}]
			}`)
		}))
		defer srv.Close()

		svc := NewServiceWithEndpoint(testLogger(), srv.URL)
		_, err := svc.FetchSnapshot(context.Background(), "nobody", "gho_test")
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})

	t.Run("non-200 response maps to upstream failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		svc := NewServiceWithEndpoint(testLogger(), srv.URL)
		_, err := svc.FetchSnapshot(context.Background(), "octocat", "gho_test")
		assert.True(t, errors.Is(err, apperror.ErrUpstream))
	})

	t.Run("other GraphQL errors map to provider error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"data": null, "errors": [{"message": "Something went wrong while executing your query."}]}`)
		}))
		defer srv.Close()

		svc := NewServiceWithEndpoint(testLogger(), srv.URL)
		_, err := svc.FetchSnapshot(context.Background(), "octocat", "gho_test")
		assert.True(t, errors.Is(err, apperror.ErrProvider))
	})
}
