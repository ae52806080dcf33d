// Package platform holds the LeetCode and Codeforces proxy clients. Both
// are thin pass-through reshapes over the providers' public APIs; neither
// provider has a Go SDK, so the clients are hand-rolled net/http.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/karn-cyber/RepoRecommendation/internal/apperror"
)

const defaultLeetCodeURL = "https://leetcode.com/graphql"

// leetcodeQuery fetches submission stats, the submission calendar, contest
// ranking, and the global question counts for one username.
const leetcodeQuery = `
query getUserProfile($username: String!) {
    matchedUser(username: $username) {
        username
        submitStats: submitStatsGlobal {
            acSubmissionNum {
                difficulty
                count
                submissions
            }
        }
        submissionCalendar
    }
    userContestRanking(username: $username) {
        rating
        globalRanking
    }
    allQuestionsCount {
        difficulty
        count
    }
}`

// SubmissionCount is one accepted-submission bucket per difficulty.
type SubmissionCount struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

// MatchedUser is LeetCode's per-user profile slice. SubmissionCalendar is a
// JSON-encoded string mapping unix day timestamps to submission counts,
// passed through as-is.
type MatchedUser struct {
	Username    string `json:"username"`
	SubmitStats struct {
		ACSubmissionNum []SubmissionCount `json:"acSubmissionNum"`
	} `json:"submitStats"`
	SubmissionCalendar string `json:"submissionCalendar"`
}

// ContestRanking is the user's contest standing, absent for users who never
// competed.
type ContestRanking struct {
	Rating        float64 `json:"rating"`
	GlobalRanking int     `json:"globalRanking"`
}

// QuestionCount is the site-wide problem count per difficulty.
type QuestionCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// LeetCodeProfile is the reshaped payload returned to the client.
type LeetCodeProfile struct {
	MatchedUser        *MatchedUser    `json:"matchedUser"`
	UserContestRanking *ContestRanking `json:"userContestRanking"`
	AllQuestionsCount  []QuestionCount `json:"allQuestionsCount"`
}

// LeetCode is a client for LeetCode's public GraphQL endpoint.
type LeetCode struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewLeetCode(logger *slog.Logger) *LeetCode {
	return &LeetCode{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultLeetCodeURL,
		logger:     logger,
	}
}

// NewLeetCodeWithURL is used by tests to target a fake endpoint.
func NewLeetCodeWithURL(logger *slog.Logger, baseURL string) *LeetCode {
	c := NewLeetCode(logger)
	c.baseURL = baseURL
	return c
}

// Profile runs the single GraphQL call for username. Provider-reported
// errors mean the handle is unknown.
func (c *LeetCode) Profile(ctx context.Context, username string) (*LeetCodeProfile, error) {
	body, err := json.Marshal(map[string]any{
		"query":     leetcodeQuery,
		"variables": map[string]string{"username": username},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding leetcode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building leetcode request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// LeetCode rejects GraphQL calls without a same-site referer.
	req.Header.Set("Referer", "https://leetcode.com")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.Upstream("failed to fetch LeetCode data", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperror.Upstream("failed to fetch LeetCode data",
			fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	var decoded struct {
		Data   LeetCodeProfile   `json:"data"`
		Errors []json.RawMessage `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperror.Upstream("failed to fetch LeetCode data", err.Error())
	}

	if len(decoded.Errors) > 0 || decoded.Data.MatchedUser == nil {
		return nil, apperror.NotFound("user", username)
	}

	return &decoded.Data, nil
}
