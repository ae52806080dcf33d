// Package dsa serves the daily practice problem lists. The sets are fixed
// tables for now.
// TODO: rotate the selection daily instead of serving the same problems.
package dsa

// Problem is one practice problem reference. Difficulty is platform-native:
// a label on LeetCode, a numeric rating on Codeforces.
type Problem struct {
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	URL        string `json:"url"`
}

// DailyProblems groups the daily sets per platform.
type DailyProblems struct {
	LeetCode   []Problem `json:"leetcode"`
	Codeforces []Problem `json:"codeforces"`
}

var daily = DailyProblems{
	LeetCode: []Problem{
		{Title: "Two Sum", Difficulty: "Easy", URL: "https://leetcode.com/problems/two-sum/"},
		{Title: "Longest Substring Without Repeating Characters", Difficulty: "Medium", URL: "https://leetcode.com/problems/longest-substring-without-repeating-characters/"},
		{Title: "Median of Two Sorted Arrays", Difficulty: "Hard", URL: "https://leetcode.com/problems/median-of-two-sorted-arrays/"},
	},
	Codeforces: []Problem{
		{Title: "Watermelon", Difficulty: "800", URL: "https://codeforces.com/problemset/problem/4/A"},
		{Title: "Theatre Square", Difficulty: "1000", URL: "https://codeforces.com/problemset/problem/1/A"},
	},
}

// Daily returns today's problem sets.
func Daily() DailyProblems {
	return daily
}
