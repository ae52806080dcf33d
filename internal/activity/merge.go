// Package activity merges per-day activity from GitHub, LeetCode, and
// Codeforces into one calendar mapping and lays it out as a year-grid
// heatmap.
package activity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/karn-cyber/RepoRecommendation/internal/model"
)

// Submission is the slice of a Codeforces submission the merge needs.
type Submission struct {
	CreationTimeSeconds int64 `json:"creationTimeSeconds"`
}

// MergeDaily sums activity counts per ISO date across the three sources.
// LeetCode's calendar keys are unix day timestamps; Codeforces submissions
// each count as one on their creation date. Dates with a zero total are
// absent from the result, not stored as zero.
func MergeDaily(github []model.CalendarDay, leetcode map[int64]int, codeforces []Submission) map[string]int {
	combined := make(map[string]int)

	for _, day := range github {
		if day.Count > 0 {
			combined[day.Date] += day.Count
		}
	}

	for ts, count := range leetcode {
		if count > 0 {
			combined[unixDate(ts)] += count
		}
	}

	for _, sub := range codeforces {
		combined[unixDate(sub.CreationTimeSeconds)]++
	}

	return combined
}

func unixDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02")
}

// ParseLeetCodeCalendar decodes LeetCode's submission calendar, which
// arrives as a JSON-encoded string of unix-day-timestamp keys.
func ParseLeetCodeCalendar(raw string) (map[int64]int, error) {
	if raw == "" {
		return nil, nil
	}

	var keyed map[string]int
	if err := json.Unmarshal([]byte(raw), &keyed); err != nil {
		return nil, fmt.Errorf("decoding submission calendar: %w", err)
	}

	calendar := make(map[int64]int, len(keyed))
	for key, count := range keyed {
		ts, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("calendar key %q: %w", key, err)
		}
		calendar[ts] = count
	}
	return calendar, nil
}

// GridDay is one cell of the year heatmap.
type GridDay struct {
	Date   string `json:"date"`
	Count  int    `json:"count"`
	Level  int    `json:"level"`
	InYear bool   `json:"inYear"`
}

// gridWeeks by gridDays covers any year with room for the leading
// out-of-year days that align the grid to week columns.
const (
	gridWeeks = 53
	gridDays  = 7
)

// YearGrid lays counts out as a 53x7 grid starting from the Sunday on or
// before January 1 of year. Days outside the target year are flagged so the
// renderer can dim them.
func YearGrid(counts map[string]int, year int) []GridDay {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	start := jan1.AddDate(0, 0, -int(jan1.Weekday()))

	days := make([]GridDay, 0, gridWeeks*gridDays)
	for i := 0; i < gridWeeks*gridDays; i++ {
		current := start.AddDate(0, 0, i)
		date := current.Format("2006-01-02")
		count := counts[date]

		days = append(days, GridDay{
			Date:   date,
			Count:  count,
			Level:  intensityLevel(count),
			InYear: current.Year() == year,
		})
	}

	return days
}

// intensityLevel buckets a count into one of five fixed heatmap shades.
func intensityLevel(count int) int {
	switch {
	case count > 10:
		return 4
	case count > 5:
		return 3
	case count > 2:
		return 2
	case count > 0:
		return 1
	default:
		return 0
	}
}
