package cmd

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show practice statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closeFn, err := openStats(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			data := st.Statistics(cmd.Context())
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), data)
			}
			renderStats(cmd.OutOrStdout(), data)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw statistics document as JSON")
	return cmd
}
