package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/karn-cyber/RepoRecommendation/internal/apperror"
)

const (
	defaultCodeforcesURL = "https://codeforces.com/api"
	// submissionLimit caps user.status at the 1000 most recent entries.
	submissionLimit = 1000
)

// CodeforcesBundle pairs the user's profile with their recent submissions.
// Both payloads pass through unmodified; the merge layer decodes the
// timestamps it needs on its own.
type CodeforcesBundle struct {
	UserInfo    json.RawMessage `json:"userInfo"`
	Submissions json.RawMessage `json:"submissions"`
}

// Codeforces is a client for the Codeforces REST API.
type Codeforces struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewCodeforces(logger *slog.Logger) *Codeforces {
	return &Codeforces{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultCodeforcesURL,
		logger:     logger,
	}
}

// NewCodeforcesWithURL is used by tests to target a fake endpoint.
func NewCodeforcesWithURL(logger *slog.Logger, baseURL string) *Codeforces {
	c := NewCodeforces(logger)
	c.baseURL = baseURL
	return c
}

// Fetch issues the user.info and user.status calls for one handle. Both
// must report success; there is no partial-success mode.
func (c *Codeforces) Fetch(ctx context.Context, handle string) (*CodeforcesBundle, error) {
	infoResult, err := c.call(ctx, fmt.Sprintf("%s/user.info?handles=%s", c.baseURL, url.QueryEscape(handle)))
	if err != nil {
		return nil, err
	}

	statusResult, err := c.call(ctx, fmt.Sprintf("%s/user.status?handle=%s&from=1&count=%d",
		c.baseURL, url.QueryEscape(handle), submissionLimit))
	if err != nil {
		return nil, err
	}

	// user.info returns an array of users; one handle means one entry.
	var users []json.RawMessage
	if err := json.Unmarshal(infoResult, &users); err != nil || len(users) == 0 {
		return nil, apperror.Upstream("failed to fetch Codeforces data", "empty user.info result")
	}

	return &CodeforcesBundle{
		UserInfo:    users[0],
		Submissions: statusResult,
	}, nil
}

// call performs one API request and unwraps the {status, result, comment}
// envelope every Codeforces endpoint uses.
func (c *Codeforces) call(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building codeforces request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.Upstream("failed to fetch Codeforces data", err.Error())
	}
	defer resp.Body.Close()

	var envelope struct {
		Status  string          `json:"status"`
		Result  json.RawMessage `json:"result"`
		Comment string          `json:"comment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperror.Upstream("failed to fetch Codeforces data", err.Error())
	}

	if envelope.Status != "OK" {
		c.logger.Warn("codeforces call rejected",
			slog.String("endpoint", endpoint),
			slog.String("comment", envelope.Comment),
		)
		return nil, apperror.Upstream("failed to fetch Codeforces data", envelope.Comment)
	}

	return envelope.Result, nil
}
