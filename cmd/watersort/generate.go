package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"svw.info/watersort/internal/cli"
	"svw.info/watersort/internal/generator"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a solvable puzzle and print it",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		cfg := configFromFlags(cmd)
		gen, err := generator.New(cfg)
		if err != nil {
			return err
		}
		state, stats, err := gen.Generate(ctx)
		if err != nil {
			return err
		}
		logger.Info("generated puzzle",
			"tubes", cfg.Tubes,
			"colors", cfg.Colors,
			"seed", cfg.Seed,
			"oracle_nodes", stats.Nodes,
			"dur", stats.Duration,
		)
		fmt.Println(cli.RenderState(state))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	puzzleFlags(generateCmd)
}
