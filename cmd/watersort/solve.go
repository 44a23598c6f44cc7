package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"svw.info/watersort/internal/cli"
	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/generator"
	"svw.info/watersort/internal/hint"
	"svw.info/watersort/internal/usecase"
)

var solveCmd = &cobra.Command{
	Use:       "solve <algorithm>",
	Short:     "Generate a puzzle and solve it with the chosen algorithm",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bfs", "dfs", "astar", "ida"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		cfg := configFromFlags(cmd)
		heuristic, _ := cmd.Flags().GetString("heuristic")
		depthLimit, _ := cmd.Flags().GetInt("depth-limit")
		idaMaxDepth, _ := cmd.Flags().GetInt("ida-max-depth")
		showStates, _ := cmd.Flags().GetBool("show-states")
		noScramble, _ := cmd.Flags().GetBool("no-scramble")

		gen, err := generator.New(cfg)
		if err != nil {
			return err
		}
		svc := usecase.NewService(gen, hint.New(nil))

		var initial domain.State
		if noScramble {
			normalized, err := cfg.Normalized()
			if err != nil {
				return err
			}
			initial = domain.Solved(normalized)
		} else {
			st, genStats, genErr := svc.Generate(ctx)
			if genErr != nil {
				return genErr
			}
			initial = st
			logger.Debug("generated puzzle", "nodes", genStats.Nodes, "dur", genStats.Duration)
		}

		fmt.Println("Initial state:")
		fmt.Println(cli.RenderState(initial))
		fmt.Println()

		res, err := svc.Solve(ctx, args[0], initial, usecase.SolveOptions{
			Heuristic:  heuristic,
			DepthLimit: depthLimit,
			MaxDepth:   idaMaxDepth,
		})
		if err != nil {
			return err
		}

		fmt.Println(cli.RenderResult(res))
		if !res.Found {
			fmt.Println("No solution found with the selected configuration.")
			return nil
		}
		if showStates {
			fmt.Println("Solution path:")
			cur := initial
			fmt.Printf("Step 0\n%s\n\n", cli.RenderState(cur))
			for i, m := range res.Moves {
				if cur, err = cur.Apply(m); err != nil {
					return err
				}
				fmt.Printf("Step %d (%s)\n%s\n\n", i+1, m, cli.RenderState(cur))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	puzzleFlags(solveCmd)
	solveCmd.Flags().String("heuristic", "entropy", "heuristic for informed search: entropy|completion|blocking")
	solveCmd.Flags().Int("depth-limit", 0, "depth limit for dfs (0 = unlimited)")
	solveCmd.Flags().Int("ida-max-depth", 0, "maximum depth explored by ida")
	solveCmd.Flags().Bool("show-states", false, "print each intermediate state of the solution")
	solveCmd.Flags().Bool("no-scramble", false, "start from the solved configuration (debug)")
}
