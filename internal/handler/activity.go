package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/karn-cyber/RepoRecommendation/internal/activity"
	"github.com/karn-cyber/RepoRecommendation/internal/auth"
)

// ActivityHandler builds the combined GitHub/LeetCode/Codeforces activity
// heatmap. GitHub is the required source; the other two are opt-in via
// query parameters and degrade to absence when their fetch fails.
type ActivityHandler struct {
	snapshots  SnapshotFetcher
	leetcode   LeetCodeClient
	codeforces CodeforcesClient
	logger     *slog.Logger
}

func NewActivityHandler(snapshots SnapshotFetcher, leetcode LeetCodeClient, codeforces CodeforcesClient, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		snapshots:  snapshots,
		leetcode:   leetcode,
		codeforces: codeforces,
		logger:     logger,
	}
}

type activityResponse struct {
	Success bool               `json:"success"`
	Year    int                `json:"year"`
	Days    map[string]int     `json:"days"`
	Grid    []activity.GridDay `json:"grid"`
}

// HandleCombinedActivity merges per-day activity across platforms into one
// calendar and year grid.
//
// GET /api/activity/{username}?year=2026&leetcode=<user>&codeforces=<handle>
func (h *ActivityHandler) HandleCombinedActivity(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	token := auth.TokenFromContext(r.Context())

	year := time.Now().UTC().Year()
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err == nil && parsed > 0 {
			year = parsed
		}
	}

	snapshot, err := h.snapshots.FetchSnapshot(r.Context(), username, token)
	if err != nil {
		writeError(w, err)
		return
	}

	leetcodeCalendar := h.leetcodeCalendar(r)
	codeforcesSubs := h.codeforcesSubmissions(r)

	days := activity.MergeDaily(snapshot.ContributionCalendar, leetcodeCalendar, codeforcesSubs)

	writeJSON(w, http.StatusOK, activityResponse{
		Success: true,
		Year:    year,
		Days:    days,
		Grid:    activity.YearGrid(days, year),
	})
}

// leetcodeCalendar fetches the optional LeetCode source. Failures are
// logged and degrade to nil.
func (h *ActivityHandler) leetcodeCalendar(r *http.Request) map[int64]int {
	handle := r.URL.Query().Get("leetcode")
	if handle == "" {
		return nil
	}

	profile, err := h.leetcode.Profile(r.Context(), handle)
	if err != nil {
		h.logger.Warn("leetcode source skipped", slog.String("handle", handle), slog.String("error", err.Error()))
		return nil
	}
	if profile.MatchedUser == nil {
		return nil
	}

	calendar, err := activity.ParseLeetCodeCalendar(profile.MatchedUser.SubmissionCalendar)
	if err != nil {
		h.logger.Warn("leetcode calendar unparseable", slog.String("handle", handle), slog.String("error", err.Error()))
		return nil
	}
	return calendar
}

// codeforcesSubmissions fetches the optional Codeforces source. Failures
// are logged and degrade to nil.
func (h *ActivityHandler) codeforcesSubmissions(r *http.Request) []activity.Submission {
	handle := r.URL.Query().Get("codeforces")
	if handle == "" {
		return nil
	}

	bundle, err := h.codeforces.Fetch(r.Context(), handle)
	if err != nil {
		h.logger.Warn("codeforces source skipped", slog.String("handle", handle), slog.String("error", err.Error()))
		return nil
	}

	var subs []activity.Submission
	if err := json.Unmarshal(bundle.Submissions, &subs); err != nil {
		h.logger.Warn("codeforces submissions unparseable", slog.String("handle", handle), slog.String("error", err.Error()))
		return nil
	}
	return subs
}
