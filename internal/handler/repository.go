// Package handler contains the HTTP handlers for the discovery and
// dashboard API. Handlers decode requests, call the domain services, and
// translate results into JSON; they never talk to upstream providers
// directly.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/karn-cyber/RepoRecommendation/internal/apperror"
	"github.com/karn-cyber/RepoRecommendation/internal/model"
	"github.com/karn-cyber/RepoRecommendation/internal/search"
)

// Discoverer runs the multi-skill aggregated search.
type Discoverer interface {
	Discover(ctx context.Context, skills []string, level model.Difficulty) ([]model.RepositoryRecord, error)
}

// PageSearcher runs a single-page direct search and reports the provider's
// total match count.
type PageSearcher interface {
	FetchPage(ctx context.Context, query, sort string, page int) ([]model.RepositoryRecord, int, error)
}

// RepositoryHandler serves the skill-based discovery and direct search
// endpoints.
type RepositoryHandler struct {
	discoverer Discoverer
	searcher   PageSearcher
	logger     *slog.Logger
}

func NewRepositoryHandler(discoverer Discoverer, searcher PageSearcher, logger *slog.Logger) *RepositoryHandler {
	return &RepositoryHandler{discoverer: discoverer, searcher: searcher, logger: logger}
}

type discoverRequest struct {
	Skills          []string `json:"skills"`
	DifficultyLevel string   `json:"difficultyLevel"`
}

type discoverResponse struct {
	Success         bool                     `json:"success"`
	Count           int                      `json:"count"`
	DifficultyLevel model.Difficulty         `json:"difficultyLevel"`
	Repositories    []model.RepositoryRecord `json:"repositories"`
}

// HandleDiscover matches repositories to a list of skills.
//
// POST /api/repositories {"skills": ["react", "go"], "difficultyLevel": "beginner"}
func (h *RepositoryHandler) HandleDiscover(w http.ResponseWriter, r *http.Request) {
	var req discoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.Validation("invalid JSON body"))
		return
	}

	if len(req.Skills) == 0 {
		writeError(w, apperror.Validation("please provide at least one skill"))
		return
	}

	level := model.ParseDifficulty(req.DifficultyLevel)

	repos, err := h.discoverer.Discover(r.Context(), req.Skills, level)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, discoverResponse{
		Success:         true,
		Count:           len(repos),
		DifficultyLevel: level,
		Repositories:    repos,
	})
}

type searchRequest struct {
	Query    string `json:"query"`
	Scope    string `json:"scope"`
	Language string `json:"language"`
	MinStars int    `json:"minStars"`
	Sort     string `json:"sort"`
}

type searchResponse struct {
	Success      bool                     `json:"success"`
	Count        int                      `json:"count"`
	Total        int                      `json:"total"`
	Repositories []model.RepositoryRecord `json:"repositories"`
}

// HandleSearch runs a single-page direct search. Count is the number of
// records returned; Total is the provider's full match count.
//
// POST /api/search {"query": "golang/go", "scope": "repo", "minStars": 100}
func (h *RepositoryHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.Validation("invalid JSON body"))
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeError(w, apperror.Validation("please provide a search query"))
		return
	}

	scoped := search.RewriteScopedQuery(req.Query, req.Scope)
	query := search.BuildDirectQuery(scoped, req.Language, req.MinStars)

	repos, total, err := h.searcher.FetchPage(r.Context(), query, req.Sort, 1)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Success:      true,
		Count:        len(repos),
		Total:        total,
		Repositories: repos,
	})
}
