package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/watersort/internal/domain"
)

var rootCmd = &cobra.Command{
	Use:   "watersort",
	Short: "Water Sort puzzle generator and solver",
	Long: `watersort generates solvable Water Sort puzzles and solves them with
classical state-space search (BFS, DFS, A*, IDA*).`,
}

var logger *slog.Logger

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "debug|info|warn|error")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		levelStr, _ := cmd.Flags().GetString("log-level")
		lvl := slog.LevelInfo
		switch strings.ToLower(levelStr) {
		case "debug":
			lvl = slog.LevelDebug
		case "warn":
			lvl = slog.LevelWarn
		case "error":
			lvl = slog.LevelError
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	}
}

// puzzleFlags registers the shared puzzle-shape flags.
func puzzleFlags(cmd *cobra.Command) {
	cmd.Flags().Int("tubes", 8, "number of tubes (5-12)")
	cmd.Flags().Int("colors", 6, "number of colors (3 to tubes-2)")
	cmd.Flags().Int("capacity", domain.DefaultCapacity, "units per tube")
	cmd.Flags().Int64("seed", 0, "random seed for reproducible puzzles")
	cmd.Flags().Int("scramble", 1000, "node-expansion bound for scrambling and solvability checks")
}

func configFromFlags(cmd *cobra.Command) domain.Config {
	tubes, _ := cmd.Flags().GetInt("tubes")
	colors, _ := cmd.Flags().GetInt("colors")
	capacity, _ := cmd.Flags().GetInt("capacity")
	seed, _ := cmd.Flags().GetInt64("seed")
	scramble, _ := cmd.Flags().GetInt("scramble")
	return domain.Config{
		Tubes:         tubes,
		Colors:        colors,
		Capacity:      capacity,
		Seed:          seed,
		ScrambleLimit: scramble,
	}
}
