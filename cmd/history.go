package cmd

import (
	"github.com/abhisek/mathiks/internal/stats"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		sortBy    string
		challenge string
		limit     int
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := stats.ParseSortKey(sortBy)
			if err != nil {
				return err
			}

			st, closeFn, err := openStats(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			results := stats.FilterByType(st.ResultsSortedBy(cmd.Context(), key), challenge)
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}
			summary := stats.Summarize(results)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), struct {
					Summary stats.Summary      `json:"summary"`
					Results []stats.GameResult `json:"results"`
				}{summary, results})
			}
			renderHistory(cmd.OutOrStdout(), results, summary)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&sortBy, "sort", "date", "Sort by date, score or accuracy")
	f.StringVar(&challenge, "type", "all", "Only show this challenge type")
	f.IntVar(&limit, "limit", 0, "Maximum number of sessions to show (0 = all)")
	f.BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
