package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/karn-cyber/RepoRecommendation/internal/dsa"
	"github.com/karn-cyber/RepoRecommendation/internal/platform"
)

// LeetCodeClient fetches a LeetCode profile.
type LeetCodeClient interface {
	Profile(ctx context.Context, username string) (*platform.LeetCodeProfile, error)
}

// CodeforcesClient fetches a Codeforces user bundle.
type CodeforcesClient interface {
	Fetch(ctx context.Context, handle string) (*platform.CodeforcesBundle, error)
}

// PlatformHandler serves the LeetCode and Codeforces proxy endpoints plus
// the static daily problem lists.
type PlatformHandler struct {
	leetcode   LeetCodeClient
	codeforces CodeforcesClient
	logger     *slog.Logger
}

func NewPlatformHandler(leetcode LeetCodeClient, codeforces CodeforcesClient, logger *slog.Logger) *PlatformHandler {
	return &PlatformHandler{leetcode: leetcode, codeforces: codeforces, logger: logger}
}

// HandleLeetCode proxies the LeetCode profile lookup.
//
// GET /api/leetcode/{username}
func (h *PlatformHandler) HandleLeetCode(w http.ResponseWriter, r *http.Request) {
	profile, err := h.leetcode.Profile(r.Context(), r.PathValue("username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleCodeforces proxies the Codeforces user info and submission lookups.
//
// GET /api/codeforces/{handle}
func (h *PlatformHandler) HandleCodeforces(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.codeforces.Fetch(r.Context(), r.PathValue("handle"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bundle)
}

// HandleDailyProblems returns the daily practice problem sets.
//
// GET /api/dsa/daily
func (h *PlatformHandler) HandleDailyProblems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dsa.Daily())
}
