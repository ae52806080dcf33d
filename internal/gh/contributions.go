// Package gh fetches and formats GitHub contribution data over the GraphQL
// API. The query runs with the caller's own OAuth token, relayed per
// request; the server never stores it.
package gh

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/karn-cyber/RepoRecommendation/internal/apperror"
	"github.com/karn-cyber/RepoRecommendation/internal/model"
)

// fetchTimeout bounds the contribution query. A deadline hit maps to the
// distinct timeout error kind so clients don't discard a valid token.
const fetchTimeout = 30 * time.Second

// CalendarDayNode is one day of the GraphQL contribution calendar.
type CalendarDayNode struct {
	ContributionCount int
	Date              string
}

// CalendarWeek groups seven calendar days, in chronological order.
type CalendarWeek struct {
	ContributionDays []CalendarDayNode
}

// RepositoryNode is an owned repository with its star count and optional
// primary language.
type RepositoryNode struct {
	Name            string
	StargazerCount  int
	PrimaryLanguage *struct{ Name string }
}

// OrganizationNode is an org membership entry.
type OrganizationNode struct {
	Name        string
	Login       string
	AvatarURL   string `graphql:"avatarUrl"`
	Description string
}

// UserPayload mirrors the slice of the GraphQL user object the formatter
// consumes. Field names double as the generated query selection set.
type UserPayload struct {
	Name          string
	Login         string
	AvatarURL     string `graphql:"avatarUrl"`
	Bio           string
	CreatedAt     string
	Followers     struct{ TotalCount int }
	Following     struct{ TotalCount int }
	Gists         struct{ TotalCount int }
	Organizations struct {
		Nodes []OrganizationNode
	} `graphql:"organizations(first: 10)"`
	ContributionsCollection struct {
		TotalCommitContributions            int
		TotalIssueContributions             int
		TotalPullRequestContributions       int
		TotalPullRequestReviewContributions int
		ContributionCalendar                struct {
			TotalContributions int
			Weeks              []CalendarWeek
		}
	} `graphql:"contributionsCollection(from: $from, to: $to)"`
	Repositories struct {
		TotalCount int
		Nodes      []RepositoryNode
	} `graphql:"repositories(first: 100, ownerAffiliations: OWNER, orderBy: {field: STARGAZERS, direction: DESC})"`
	RepositoriesContributedTo struct {
		TotalCount int
	} `graphql:"repositoriesContributedTo(first: 100, contributionTypes: [COMMIT, PULL_REQUEST, ISSUE])"`
	StarredRepositories struct{ TotalCount int }
}

type contributionsQuery struct {
	User UserPayload `graphql:"user(login: $login)"`
}

// Service fetches contribution snapshots from GitHub GraphQL.
type Service struct {
	logger *slog.Logger
	// graphqlURL overrides the default API endpoint; tests point it at a
	// local fake. Empty means api.github.com.
	graphqlURL string
}

func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// NewServiceWithEndpoint is used by tests to target a fake GraphQL server.
func NewServiceWithEndpoint(logger *slog.Logger, graphqlURL string) *Service {
	return &Service{logger: logger, graphqlURL: graphqlURL}
}

// FetchSnapshot queries the current calendar year of contribution data for
// username using the caller's bearer token and formats it into a snapshot.
func (s *Service) FetchSnapshot(ctx context.Context, username, token string) (*model.ContributionSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, src)

	client := githubv4.NewClient(httpClient)
	if s.graphqlURL != "" {
		client = githubv4.NewEnterpriseClient(s.graphqlURL, httpClient)
	}

	year := time.Now().UTC().Year()
	variables := map[string]interface{}{
		"login": githubv4.String(username),
		"from":  githubv4.DateTime{Time: time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)},
		"to":    githubv4.DateTime{Time: time.Date(year, 12, 31, 23, 59, 59, 0, time.UTC)},
	}

	var q contributionsQuery
	if err := client.Query(ctx, &q, variables); err != nil {
		return nil, s.classifyQueryError(username, err)
	}

	snapshot := FormatSnapshot(&q.User)
	s.logger.Debug("contribution snapshot built",
		slog.String("username", snapshot.Username),
		slog.Int("calendarDays", len(snapshot.ContributionCalendar)),
	)

	return &snapshot, nil
}

// classifyQueryError maps githubv4 failures onto the error taxonomy. The
// library folds GraphQL-level errors and transport errors into one error
// value, so classification goes by shape.
func (s *Service) classifyQueryError(username string, err error) error {
	s.logger.Warn("contribution query failed",
		slog.String("username", username),
		slog.String("error", err.Error()),
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apperror.Timeout("GitHub took too long to respond")
	case strings.Contains(err.Error(), "Could not resolve to a User"):
		return apperror.NotFound("user", username)
	case strings.Contains(err.Error(), "non-200 OK status code"):
		return apperror.Upstream("failed to fetch contribution data", err.Error())
	default:
		return apperror.Provider("failed to fetch data", err.Error())
	}
}
