package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/karn-cyber/RepoRecommendation/internal/apperror"
	"github.com/karn-cyber/RepoRecommendation/internal/model"
)

// maxResults caps the aggregated response size.
const maxResults = 100

// skillSearcher is the slice of Fetcher the Aggregator needs. Declared here
// so tests can swap in a fake without HTTP.
type skillSearcher interface {
	FetchAll(ctx context.Context, query string) []model.RepositoryRecord
}

// Aggregator fans a discovery request out across skills, one concurrent
// search per skill, and merges the results into a single deduplicated,
// star-sorted list.
type Aggregator struct {
	fetcher skillSearcher
	logger  *slog.Logger
}

func NewAggregator(fetcher skillSearcher, logger *slog.Logger) *Aggregator {
	return &Aggregator{fetcher: fetcher, logger: logger}
}

// Discover searches every skill concurrently and merges the results.
// Individual skill failures are swallowed inside the fetcher (they yield an
// empty list), so the overall call succeeds with a partial result set.
// Duplicate repository IDs across skills collapse to one entry; the sort
// resets ordering afterwards, so which copy wins is not observable beyond
// minor owner fields.
func (a *Aggregator) Discover(ctx context.Context, skills []string, level model.Difficulty) ([]model.RepositoryRecord, error) {
	var cleaned []string
	for _, skill := range skills {
		if s := strings.TrimSpace(skill); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return nil, apperror.Validation("please provide at least one skill")
	}

	results := make([][]model.RepositoryRecord, len(cleaned))

	g, gctx := errgroup.WithContext(ctx)
	for i, skill := range cleaned {
		g.Go(func() error {
			results[i] = a.fetcher.FetchAll(gctx, BuildSkillQuery(skill, level))
			return nil
		})
	}
	// Tasks never return errors; Wait is just the join point.
	_ = g.Wait()

	byID := make(map[int64]model.RepositoryRecord)
	for _, records := range results {
		for _, record := range records {
			byID[record.ID] = record
		}
	}

	merged := make([]model.RepositoryRecord, 0, len(byID))
	for _, record := range byID {
		merged = append(merged, record)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Stars > merged[j].Stars
	})

	if len(merged) > maxResults {
		merged = merged[:maxResults]
	}

	a.logger.Debug("aggregated skill search",
		slog.Int("skills", len(cleaned)),
		slog.Int("results", len(merged)),
	)

	return merged, nil
}
