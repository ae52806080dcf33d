package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karn-cyber/RepoRecommendation/internal/apperror"
	"github.com/karn-cyber/RepoRecommendation/internal/handler"
	"github.com/karn-cyber/RepoRecommendation/internal/model"
)

type mockSnapshots struct {
	capturedUser  string
	capturedToken string
	snapshot      *model.ContributionSnapshot
	err           error
}

func (m *mockSnapshots) FetchSnapshot(_ context.Context, username, token string) (*model.ContributionSnapshot, error) {
	m.capturedUser = username
	m.capturedToken = token
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot, nil
}

// getWithPathValue routes the request through chi-compatible path values.
func getWithPathValue(h http.HandlerFunc, path, key, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.SetPathValue(key, value)
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestHandleGitHubContributions(t *testing.T) {
	t.Run("returns the formatted snapshot", func(t *testing.T) {
		snapshots := &mockSnapshots{snapshot: &model.ContributionSnapshot{
			Username: "octocat",
			Stats:    model.ContributionStats{TotalContributions: 100, ContributionStreak: 4},
		}}
		h := handler.NewContributionHandler(snapshots, testLogger())

		rr := getWithPathValue(h.HandleGitHubContributions, "/api/github/contributions/octocat", "username", "octocat")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "octocat", snapshots.capturedUser)

		var res struct {
			Success bool                       `json:"success"`
			Data    model.ContributionSnapshot `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.True(t, res.Success)
		assert.Equal(t, 4, res.Data.Stats.ContributionStreak)
	})

	t.Run("unknown user maps to 404", func(t *testing.T) {
		snapshots := &mockSnapshots{err: apperror.NotFound("user", "nobody")}
		h := handler.NewContributionHandler(snapshots, testLogger())

		rr := getWithPathValue(h.HandleGitHubContributions, "/api/github/contributions/nobody", "username", "nobody")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("timeout maps to 504", func(t *testing.T) {
		snapshots := &mockSnapshots{err: apperror.Timeout("GitHub took too long to respond")}
		h := handler.NewContributionHandler(snapshots, testLogger())

		rr := getWithPathValue(h.HandleGitHubContributions, "/api/github/contributions/slow", "username", "slow")
		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)

		var res handler.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "timeout", res.Error)
	})

	t.Run("provider rejection maps to 400 with details", func(t *testing.T) {
		snapshots := &mockSnapshots{err: apperror.Provider("failed to fetch data", "FIELD_ERROR")}
		h := handler.NewContributionHandler(snapshots, testLogger())

		rr := getWithPathValue(h.HandleGitHubContributions, "/api/github/contributions/x", "username", "x")
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var res handler.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "FIELD_ERROR", res.Details)
	})
}

func TestHandleDemoContributions(t *testing.T) {
	h := handler.NewContributionHandler(&mockSnapshots{}, testLogger())

	rr := getWithPathValue(h.HandleDemoContributions, "/api/contributions/someone", "username", "someone")

	assert.Equal(t, http.StatusOK, rr.Code)

	var res struct {
		Success bool `json:"success"`
		Data    struct {
			Username             string              `json:"username"`
			AvatarURL            string              `json:"avatarUrl"`
			ContributionCalendar []model.CalendarDay `json:"contributionCalendar"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.Equal(t, "someone", res.Data.Username)
	assert.Contains(t, res.Data.AvatarURL, "someone")
	assert.Len(t, res.Data.ContributionCalendar, 365)
}
