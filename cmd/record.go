package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/mathiks/internal/stats"
	"github.com/spf13/cobra"
)

func newRecordCmd() *cobra.Command {
	var (
		in     stats.GameInput
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a completed practice session",
		Example: `  mathiks record --type arithmetic --score 8 --total 10 --time 120
  mathiks record --type speed-drill --score 42 --total 50 --time 60 --streak 17`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.ChallengeName == "" {
				in.ChallengeName = stats.DisplayName(in.ChallengeType)
			}

			st, closeFn, err := openStats(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := st.SaveGameResult(cmd.Context(), in)
			if err != nil {
				var invalid *stats.ErrInvalidResult
				if errors.As(err, &invalid) {
					return fmt.Errorf("result not saved: %w", err)
				}
				return fmt.Errorf("result not saved, storage unavailable: %w", err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			renderSaved(cmd.OutOrStdout(), res)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.ChallengeType, "type", "", "Challenge type tag (e.g. arithmetic, speed-drill)")
	f.StringVar(&in.ChallengeName, "name", "", "Display name (defaults to the catalog name for --type)")
	f.StringVar(&in.Difficulty, "difficulty", "", "Challenge difficulty, if any")
	f.StringVar(&in.Operation, "operation", "", "Challenge operation, if any")
	f.IntVar(&in.Score, "score", 0, "Number of correct answers")
	f.IntVar(&in.TotalQuestions, "total", 0, "Number of questions asked")
	f.IntVar(&in.TimeSpent, "time", 0, "Seconds spent on the session")
	f.IntVar(&in.Streak, "streak", 0, "Best consecutive-correct streak")
	f.StringVar(&in.Date, "date", "", "ISO-8601 session date (defaults to now)")
	f.BoolVar(&asJSON, "json", false, "Print the saved result as JSON")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
