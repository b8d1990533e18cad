package cmd

import (
	"fmt"
	"log"

	"github.com/abhisek/mathiks/internal/config"
	"github.com/abhisek/mathiks/internal/stats"
	"github.com/abhisek/mathiks/internal/store"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the mathiks command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mathiks",
		Short:         "Arithmetic practice statistics",
		Long:          "Mathiks — records practice session results and shows accuracy, streaks and per-challenge stats.",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHIKS_DB env var; \":memory:\" for a throwaway store)")
	rootCmd.PersistentFlags().String("key", "", "Storage key of the statistics document (overrides MATHIKS_STORAGE_KEY)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress storage warnings")

	rootCmd.AddCommand(newRecordCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// resolveConfig loads env configuration and applies persistent flag
// overrides.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if k, _ := cmd.Flags().GetString("key"); k != "" {
		cfg.StorageKey = k
	}
	if cmd.Flags().Changed("quiet") {
		cfg.Quiet, _ = cmd.Flags().GetBool("quiet")
	}
	return cfg, nil
}

// openStats opens the configured backend and wraps it in a stats.Store.
// The returned func releases the backend.
func openStats(cmd *cobra.Command) (*stats.Store, func(), error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	var logger *log.Logger
	if !cfg.Quiet {
		logger = log.New(cmd.ErrOrStderr(), "warning: ", 0)
	}
	opts := []stats.Option{stats.WithKey(cfg.StorageKey), stats.WithLogger(logger)}

	if cfg.DBPath == ":memory:" {
		return stats.New(store.NewMemory(), opts...), func() {}, nil
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
	} else {
		err = store.EnsureDir(dbPath)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return stats.New(st, opts...), func() { st.Close() }, nil
}
