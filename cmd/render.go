package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/abhisek/mathiks/internal/stats"
	"github.com/abhisek/mathiks/internal/ui/theme"
)

// recentGames is how many sessions the stats view lists.
const recentGames = 10

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func row(w io.Writer, label, value string) {
	fmt.Fprintln(w, theme.Label.Render(label)+theme.Value.Render(value))
}

func pct(n int) string {
	return fmt.Sprintf("%d%%", n)
}

func formatWhen(ms int64) string {
	return time.UnixMilli(ms).Local().Format("Jan 2, 2006 15:04")
}

func renderSaved(w io.Writer, r stats.GameResult) {
	fmt.Fprintln(w, theme.Title.Render("Session saved"))
	row(w, "Challenge", r.ChallengeName)
	row(w, "Score", fmt.Sprintf("%d/%d", r.Score, r.TotalQuestions))
	fmt.Fprintln(w, theme.Label.Render("Accuracy")+theme.ForAccuracy(r.Accuracy).Render(pct(r.Accuracy)))
	row(w, "Time", stats.FormatSeconds(r.TimeSpent))
	if r.Streak > 0 {
		row(w, "Best streak", fmt.Sprint(r.Streak))
	}
}

func renderStats(w io.Writer, st *stats.Statistics) {
	fmt.Fprintln(w, theme.Title.Render("Your Statistics"))
	if st.TotalGames == 0 {
		fmt.Fprintln(w, theme.Subtitle.Render("No games played yet!"))
		fmt.Fprintln(w, theme.Hint.Render("Complete some challenges to see your statistics here."))
		return
	}

	fmt.Fprintln(w)
	row(w, "Games Played", fmt.Sprint(st.TotalGames))
	fmt.Fprintln(w, theme.Label.Render("Accuracy")+theme.ForAccuracy(st.OverallAccuracy()).Render(pct(st.OverallAccuracy())))
	row(w, "Best Streak", fmt.Sprint(st.BestStreak))
	row(w, "Avg. Time/Q", stats.FormatSeconds(st.AverageTimePerQuestionOverall))

	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Title.Render("By Challenge"))
	for _, c := range challengeRows(st) {
		cs := st.ChallengeStats[c.Type]
		if cs == nil {
			fmt.Fprintln(w, theme.Label.Render(c.Name)+theme.Hint.Render("No games played"))
			continue
		}
		line := fmt.Sprintf("%d games  %s  best %d  %s/q",
			cs.Played,
			theme.ForAccuracy(cs.Accuracy).Render(pct(cs.Accuracy)),
			cs.BestScore,
			stats.FormatSeconds(cs.AverageTimePerQuestion),
		)
		fmt.Fprintln(w, theme.Label.Render(c.Name)+theme.Body.Render(line))
	}

	if recent := st.Recent(recentGames); len(recent) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, theme.Title.Render("Recent Games"))
		for _, r := range recent {
			renderResultLine(w, r)
		}
	}
}

// challengeRows lists the catalog followed by any recorded types the
// catalog does not know, sorted by tag.
func challengeRows(st *stats.Statistics) []stats.Challenge {
	rows := slices.Clone(stats.Catalog)
	var extra []string
	for t := range st.ChallengeStats {
		if stats.DisplayName(t) == t {
			extra = append(extra, t)
		}
	}
	slices.Sort(extra)
	for _, t := range extra {
		rows = append(rows, stats.Challenge{Type: t, Name: t})
	}
	return rows
}

func renderResultLine(w io.Writer, r stats.GameResult) {
	fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
		theme.Body.Render(r.ChallengeName),
		theme.Subtitle.Render(formatWhen(r.Timestamp)),
		theme.Value.Render(fmt.Sprintf("%d/%d", r.Score, r.TotalQuestions)),
		theme.ForAccuracy(r.Accuracy).Render(pct(r.Accuracy)),
		theme.Hint.Render(stats.FormatSeconds(r.TimeSpent)),
	)
}

func renderHistory(w io.Writer, results []stats.GameResult, sum stats.Summary) {
	fmt.Fprintln(w, theme.Title.Render("Your Results"))
	if len(results) == 0 {
		fmt.Fprintln(w, theme.Subtitle.Render("No results yet!"))
		return
	}

	fmt.Fprintln(w, theme.Card.Render(fmt.Sprintf(
		"Total Sessions %d   Avg Accuracy %s   Best Streak %d   Avg Time/Question %s",
		sum.Sessions, pct(sum.AverageAccuracy), sum.BestStreak, stats.FormatSeconds(sum.AverageTimePerQuestion),
	)))
	fmt.Fprintln(w, theme.Subtitle.Render(fmt.Sprintf("Practice Sessions (%d)", len(results))))
	for _, r := range results {
		renderResultLine(w, r)
	}
}
