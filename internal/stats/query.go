package stats

import "slices"

// OverallAccuracy is the percentage of all attempted questions answered
// correctly, across every save ever made.
func (s *Statistics) OverallAccuracy() int {
	return percent(s.TotalCorrect, s.TotalQuestionsAttemptedOverall)
}

// Recent returns up to n of the most recent results.
func (s *Statistics) Recent(n int) []GameResult {
	if n < 0 {
		n = 0
	}
	return slices.Clone(s.Results[:min(n, len(s.Results))])
}

// FilterByType keeps the results of one challenge type. An empty type or
// "all" keeps everything.
func FilterByType(results []GameResult, challengeType string) []GameResult {
	if challengeType == "" || challengeType == "all" {
		return slices.Clone(results)
	}
	out := []GameResult{}
	for _, r := range results {
		if r.ChallengeType == challengeType {
			out = append(out, r)
		}
	}
	return out
}

// ChallengeTypes lists the distinct challenge types in results, in the
// order they first appear.
func ChallengeTypes(results []GameResult) []string {
	seen := make(map[string]bool)
	var types []string
	for _, r := range results {
		if !seen[r.ChallengeType] {
			seen[r.ChallengeType] = true
			types = append(types, r.ChallengeType)
		}
	}
	return types
}

// Summary condenses a list of results for the history view.
type Summary struct {
	Sessions               int `json:"sessions"`
	AverageAccuracy        int `json:"averageAccuracy"`
	BestStreak             int `json:"bestStreak"`
	AverageTimePerQuestion int `json:"averageTimePerQuestion"`
}

// Summarize computes a Summary over results. Average accuracy is the
// mean of per-session accuracies, not a question-weighted one.
func Summarize(results []GameResult) Summary {
	sum := Summary{Sessions: len(results)}
	if len(results) == 0 {
		return sum
	}

	var accuracy, timeSpent, questions int
	for _, r := range results {
		accuracy += r.Accuracy
		timeSpent += r.TimeSpent
		questions += r.TotalQuestions
		sum.BestStreak = max(sum.BestStreak, r.Streak)
	}
	sum.AverageAccuracy = ratio(accuracy, len(results))
	sum.AverageTimePerQuestion = ratio(timeSpent, questions)
	return sum
}
