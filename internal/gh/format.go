package gh

import (
	"math"
	"sort"
	"time"

	"github.com/karn-cyber/RepoRecommendation/internal/model"
)

// topLanguages caps the ranked language list; six axes fit the radar chart.
const topLanguages = 6

// FormatSnapshot turns a raw GraphQL user payload into the snapshot shape
// the API returns. Pure and deterministic apart from the streak's notion of
// "today". Missing source data defaults to zero values rather than failing.
func FormatSnapshot(user *UserPayload) model.ContributionSnapshot {
	calendar := flattenCalendar(user.ContributionsCollection.ContributionCalendar.Weeks)

	orgs := make([]model.Organization, 0, len(user.Organizations.Nodes))
	for _, org := range user.Organizations.Nodes {
		orgs = append(orgs, model.Organization{
			Name:        org.Name,
			Login:       org.Login,
			AvatarURL:   org.AvatarURL,
			Description: org.Description,
		})
	}

	return model.ContributionSnapshot{
		Username:      user.Login,
		Name:          user.Name,
		AvatarURL:     user.AvatarURL,
		Bio:           user.Bio,
		CreatedAt:     user.CreatedAt,
		Followers:     user.Followers.TotalCount,
		Following:     user.Following.TotalCount,
		PublicGists:   user.Gists.TotalCount,
		Organizations: orgs,
		Stats: model.ContributionStats{
			TotalContributions:      user.ContributionsCollection.ContributionCalendar.TotalContributions,
			TotalCommits:            user.ContributionsCollection.TotalCommitContributions,
			TotalPullRequests:       user.ContributionsCollection.TotalPullRequestContributions,
			TotalIssues:             user.ContributionsCollection.TotalIssueContributions,
			TotalRepositories:       user.Repositories.TotalCount,
			ContributedRepositories: user.RepositoriesContributedTo.TotalCount,
			TotalStars:              sumStars(user.Repositories.Nodes),
			ContributionStreak:      Streak(calendar, today()),
		},
		Languages:            RankLanguages(user.Repositories.Nodes),
		ContributionCalendar: calendar,
		RecentContributions:  []model.RecentContribution{},
	}
}

// flattenCalendar collapses weeks into one chronological day list.
func flattenCalendar(weeks []CalendarWeek) []model.CalendarDay {
	days := []model.CalendarDay{}
	for _, week := range weeks {
		for _, day := range week.ContributionDays {
			days = append(days, model.CalendarDay{
				Date:  day.Date,
				Count: day.ContributionCount,
			})
		}
	}
	return days
}

// RankLanguages counts repositories per primary language and returns the
// top entries by integer percentage. Repositories without a primary
// language are excluded from the denominator.
func RankLanguages(repos []RepositoryNode) []model.LanguageStat {
	counts := make(map[string]int)
	total := 0
	for _, repo := range repos {
		if repo.PrimaryLanguage == nil || repo.PrimaryLanguage.Name == "" {
			continue
		}
		counts[repo.PrimaryLanguage.Name]++
		total++
	}
	if total == 0 {
		return []model.LanguageStat{}
	}

	stats := make([]model.LanguageStat, 0, len(counts))
	for name, count := range counts {
		stats = append(stats, model.LanguageStat{
			Name:       name,
			Count:      count,
			Percentage: int(math.Round(float64(count) / float64(total) * 100)),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Percentage != stats[j].Percentage {
			return stats[i].Percentage > stats[j].Percentage
		}
		return stats[i].Name < stats[j].Name
	})

	if len(stats) > topLanguages {
		stats = stats[:topLanguages]
	}
	return stats
}

func sumStars(repos []RepositoryNode) int {
	total := 0
	for _, repo := range repos {
		total += repo.StargazerCount
	}
	return total
}

// Streak counts consecutive days with activity, walking backward from the
// most recent calendar entry. A zero-count day breaks the streak only when
// it is strictly in the past: today may simply not be over yet.
func Streak(calendar []model.CalendarDay, today string) int {
	streak := 0
	for i := len(calendar) - 1; i >= 0; i-- {
		day := calendar[i]
		if day.Count > 0 {
			streak++
		} else if day.Date < today {
			break
		}
	}
	return streak
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
