// Package search implements repository discovery over the GitHub search
// API: skill-to-qualifier mapping, paginated fetching, and concurrent
// multi-skill aggregation.
package search

import (
	"fmt"
	"strings"

	"github.com/karn-cyber/RepoRecommendation/internal/model"
)

// skillAliases maps common skill names to the GitHub search qualifier that
// actually finds relevant projects. Framework names search better as topics;
// a plain `language:react` would match nothing. Kept as package data so new
// aliases are a table edit, not a code change.
var skillAliases = map[string]string{
	"node.js": "topic:nodejs",
	"nodejs":  "topic:nodejs",
	"angular": "topic:angular",
	"react":   "topic:react",
	"vue":     "topic:vue",
	"next.js": "topic:nextjs",
	"express": "topic:express",
	"django":  "topic:django",
	"flask":   "topic:flask",
	"spring":  "topic:spring",
	"laravel": "topic:laravel",
	"dotnet":  "topic:dotnet",
	".net":    "topic:dotnet",
	"c++":     "language:cpp",
	"c#":      "language:csharp",
}

// difficultyClauses appends a popularity or label filter per level.
// DifficultyAll has no entry on purpose.
var difficultyClauses = map[model.Difficulty]string{
	model.DifficultyBeginner:     " label:good-first-issue,help-wanted",
	model.DifficultyIntermediate: " stars:100..1000",
	model.DifficultyAdvanced:     " stars:>1000",
}

// BuildSkillQuery translates a free-text skill into a GitHub search query.
// Unknown skills never fail; they fall back to a language qualifier.
func BuildSkillQuery(skill string, level model.Difficulty) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))

	query, ok := skillAliases[normalized]
	if !ok {
		query = "language:" + normalized
	}

	return query + difficultyClauses[level]
}

// BuildDirectQuery assembles the single-query search string for the direct
// search path: free text plus optional language and minimum-star filters.
func BuildDirectQuery(query, language string, minStars int) string {
	q := strings.TrimSpace(query)
	if language != "" {
		q += " language:" + language
	}
	if minStars > 0 {
		q += fmt.Sprintf(" stars:>=%d", minStars)
	}
	return q
}

// Search scopes for RewriteScopedQuery.
const (
	ScopeAll  = "all"
	ScopeOrg  = "org"
	ScopeRepo = "repo"
)

// RewriteScopedQuery rewrites an organization-style or exact-repo-style
// input into the matching GitHub qualifier. A repo query without an owner
// segment falls back to a name search.
func RewriteScopedQuery(query, scope string) string {
	q := strings.TrimSpace(query)

	switch scope {
	case ScopeOrg:
		return "org:" + q
	case ScopeRepo:
		if strings.Contains(q, "/") {
			return "repo:" + q
		}
		return "in:name " + q
	default:
		return q
	}
}
