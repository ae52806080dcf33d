// Package model defines the JSON shapes shared between the API layer and
// the domain services. Everything here is request-scoped — nothing is
// persisted.
package model

import (
	"strings"
	"time"
)

// Difficulty filters repository discovery by how approachable a project is
// for a contributor.
type Difficulty string

const (
	DifficultyAll          Difficulty = "all"
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ParseDifficulty normalizes a client-supplied difficulty string.
// Unknown values degrade to DifficultyAll rather than failing.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyBeginner:
		return DifficultyBeginner
	case DifficultyIntermediate:
		return DifficultyIntermediate
	case DifficultyAdvanced:
		return DifficultyAdvanced
	default:
		return DifficultyAll
	}
}

// Owner identifies the account a repository belongs to.
type Owner struct {
	Login  string `json:"login"`
	Avatar string `json:"avatar"`
}

// RepositoryRecord is the normalized repository shape returned to the
// client regardless of which search query produced it. ID is the dedup key
// when results from multiple skill searches are merged.
type RepositoryRecord struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"fullName"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Language    string    `json:"language"`
	Topics      []string  `json:"topics"`
	OpenIssues  int       `json:"openIssues"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Owner       Owner     `json:"owner"`
}
