package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karn-cyber/RepoRecommendation/internal/apperror"
	"github.com/karn-cyber/RepoRecommendation/internal/handler"
	"github.com/karn-cyber/RepoRecommendation/internal/platform"
)

func TestHandleLeetCode(t *testing.T) {
	t.Run("passes the profile through", func(t *testing.T) {
		lc := &mockLeetCode{profile: leetcodeProfileWithCalendar(`{}`)}
		h := handler.NewPlatformHandler(lc, &mockCodeforces{}, testLogger())

		rr := getWithPathValue(h.HandleLeetCode, "/api/leetcode/x", "username", "x")
		assert.Equal(t, http.StatusOK, rr.Code)

		var res platform.LeetCodeProfile
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		require.NotNil(t, res.MatchedUser)
		assert.Equal(t, "x", res.MatchedUser.Username)
	})

	t.Run("unknown handle maps to 404", func(t *testing.T) {
		lc := &mockLeetCode{err: apperror.NotFound("user", "nobody")}
		h := handler.NewPlatformHandler(lc, &mockCodeforces{}, testLogger())

		rr := getWithPathValue(h.HandleLeetCode, "/api/leetcode/nobody", "username", "nobody")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleCodeforces(t *testing.T) {
	t.Run("returns the bundle", func(t *testing.T) {
		cf := &mockCodeforces{bundle: &platform.CodeforcesBundle{
			UserInfo:    json.RawMessage(`{"handle": "tourist"}`),
			Submissions: json.RawMessage(`[]`),
		}}
		h := handler.NewPlatformHandler(&mockLeetCode{}, cf, testLogger())

		rr := getWithPathValue(h.HandleCodeforces, "/api/codeforces/tourist", "handle", "tourist")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"userInfo": {"handle": "tourist"}, "submissions": []}`, rr.Body.String())
	})

	t.Run("provider failure maps to 500", func(t *testing.T) {
		cf := &mockCodeforces{err: apperror.Upstream("failed to fetch Codeforces data", "handle not found")}
		h := handler.NewPlatformHandler(&mockLeetCode{}, cf, testLogger())

		rr := getWithPathValue(h.HandleCodeforces, "/api/codeforces/x", "handle", "x")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestHandleDailyProblems(t *testing.T) {
	h := handler.NewPlatformHandler(&mockLeetCode{}, &mockCodeforces{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/dsa/daily", nil)
	rr := httptest.NewRecorder()
	h.HandleDailyProblems(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var res struct {
		LeetCode   []map[string]string `json:"leetcode"`
		Codeforces []map[string]string `json:"codeforces"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.NotEmpty(t, res.LeetCode)
	assert.NotEmpty(t, res.Codeforces)
	assert.Equal(t, "Two Sum", res.LeetCode[0]["title"])
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	handler.HandleHealth(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "OK", "message": "API is running"}`, rr.Body.String())
}
