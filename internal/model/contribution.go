package model

// CalendarDay is the atomic unit of every heatmap: one calendar date and a
// non-negative activity count. Dates are ISO "YYYY-MM-DD" strings, the
// format GitHub's contribution calendar uses on the wire.
type CalendarDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Organization is a GitHub org the user belongs to.
type Organization struct {
	Name        string `json:"name"`
	Login       string `json:"login"`
	AvatarURL   string `json:"avatarUrl"`
	Description string `json:"description"`
}

// LanguageStat ranks one primary language across the user's repositories.
// Percentage is an integer rounded to the nearest whole number, computed
// over repositories that have a primary language at all.
type LanguageStat struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// ContributionStats aggregates the user's contribution-type totals.
type ContributionStats struct {
	TotalContributions      int `json:"totalContributions"`
	TotalCommits            int `json:"totalCommits"`
	TotalPullRequests       int `json:"totalPullRequests"`
	TotalIssues             int `json:"totalIssues"`
	TotalRepositories       int `json:"totalRepositories"`
	ContributedRepositories int `json:"contributedRepositories"`
	TotalStars              int `json:"totalStars"`
	ContributionStreak      int `json:"contributionStreak"`
}

// RecentContribution is a single recent PR/issue entry. The live GraphQL
// path returns an empty list (detailed PR/issue data would need extra API
// calls); the demo endpoint fills it with fixed entries.
type RecentContribution struct {
	Repo   string `json:"repo"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

// ContributionSnapshot is the formatted, point-in-time view of a user's
// GitHub activity. Derived once per request from a GraphQL payload.
type ContributionSnapshot struct {
	Username             string               `json:"username"`
	Name                 string               `json:"name"`
	AvatarURL            string               `json:"avatarUrl"`
	Bio                  string               `json:"bio"`
	CreatedAt            string               `json:"createdAt"`
	Followers            int                  `json:"followers"`
	Following            int                  `json:"following"`
	PublicGists          int                  `json:"publicGists"`
	Organizations        []Organization       `json:"organizations"`
	Stats                ContributionStats    `json:"stats"`
	Languages            []LanguageStat       `json:"languages"`
	ContributionCalendar []CalendarDay        `json:"contributionCalendar"`
	RecentContributions  []RecentContribution `json:"recentContributions"`
}
