package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/go-github/v68/github"

	"github.com/karn-cyber/RepoRecommendation/internal/apperror"
	"github.com/karn-cyber/RepoRecommendation/internal/model"
)

const (
	// perPage is the GitHub search API maximum.
	perPage = 100
	// maxPages caps a skill search at 300 repositories.
	maxPages = 3
	// pageDelay spaces out consecutive page requests to stay under the
	// search rate limit.
	pageDelay = 100 * time.Millisecond
)

// Fetcher issues repository searches against GitHub and normalizes the
// results. It never retries a failed page.
type Fetcher struct {
	client *github.Client
	logger *slog.Logger
}

// NewFetcher creates a Fetcher around a configured go-github client.
func NewFetcher(client *github.Client, logger *slog.Logger) *Fetcher {
	return &Fetcher{client: client, logger: logger}
}

// FetchAll requests pages 1..maxPages for one query, sorted by stars
// descending. It stops early on a short page (natural end of results) or a
// page failure; a failed page degrades to whatever was accumulated so far
// rather than failing the whole call.
func (f *Fetcher) FetchAll(ctx context.Context, query string) []model.RepositoryRecord {
	var records []model.RepositoryRecord

	for page := 1; page <= maxPages; page++ {
		pageRecords, _, err := f.FetchPage(ctx, query, "stars", page)
		if err != nil {
			f.logger.Warn("search page failed, returning partial results",
				slog.String("query", query),
				slog.Int("page", page),
				slog.String("error", err.Error()),
			)
			break
		}

		records = append(records, pageRecords...)

		if len(pageRecords) < perPage {
			break
		}

		select {
		case <-ctx.Done():
			return records
		case <-time.After(pageDelay):
		}
	}

	return records
}

// FetchPage requests a single page of search results and returns the
// normalized records plus the provider's reported total match count, which
// can exceed the number of records actually returned.
func (f *Fetcher) FetchPage(ctx context.Context, query, sort string, page int) ([]model.RepositoryRecord, int, error) {
	if sort == "" {
		sort = "stars"
	}

	result, _, err := f.client.Search.Repositories(ctx, query, &github.SearchOptions{
		Sort:  sort,
		Order: "desc",
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: perPage,
		},
	})
	if err != nil {
		return nil, 0, apperror.Upstream("GitHub search failed", err.Error())
	}

	records := make([]model.RepositoryRecord, 0, len(result.Repositories))
	for _, repo := range result.Repositories {
		records = append(records, normalizeRepository(repo))
	}

	return records, result.GetTotal(), nil
}

func normalizeRepository(repo *github.Repository) model.RepositoryRecord {
	topics := repo.Topics
	if topics == nil {
		topics = []string{}
	}

	return model.RepositoryRecord{
		ID:          repo.GetID(),
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		URL:         repo.GetHTMLURL(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		Language:    repo.GetLanguage(),
		Topics:      topics,
		OpenIssues:  repo.GetOpenIssuesCount(),
		UpdatedAt:   repo.GetUpdatedAt().Time,
		Owner: model.Owner{
			Login:  repo.GetOwner().GetLogin(),
			Avatar: repo.GetOwner().GetAvatarURL(),
		},
	}
}
