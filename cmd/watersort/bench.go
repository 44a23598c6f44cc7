package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"svw.info/watersort/internal/generator"
	"svw.info/watersort/internal/hint"
	"svw.info/watersort/internal/ports"
	"svw.info/watersort/internal/usecase"
)

// benchRuns is the algorithm x heuristic matrix exercised against a
// single generated puzzle.
var benchRuns = []struct {
	Algorithm string
	Heuristic string
}{
	{"bfs", ""},
	{"dfs", ""},
	{"astar", "entropy"},
	{"astar", "completion"},
	{"astar", "blocking"},
	{"ida", "entropy"},
	{"ida", "completion"},
	{"ida", "blocking"},
}

type benchRow struct {
	Algorithm string
	Heuristic string
	Result    ports.Result
	Err       error
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Solve one puzzle with every algorithm and heuristic, concurrently",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		cfg := configFromFlags(cmd)
		timeout, _ := cmd.Flags().GetDuration("timeout")
		csvPath, _ := cmd.Flags().GetString("csv")

		gen, err := generator.New(cfg)
		if err != nil {
			return err
		}
		svc := usecase.NewService(gen, hint.New(nil))
		initial, stats, err := svc.Generate(ctx)
		if err != nil {
			return err
		}
		logger.Info("benchmark puzzle ready", "seed", cfg.Seed, "oracle_nodes", stats.Nodes)

		// States are immutable, so every run shares the same initial
		// puzzle with zero coordination.
		rows := make([]benchRow, len(benchRuns))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.NumCPU())
		for i, run := range benchRuns {
			i, run := i, run
			g.Go(func() error {
				runCtx := gctx
				if timeout > 0 {
					var cancel context.CancelFunc
					runCtx, cancel = context.WithTimeout(gctx, timeout)
					defer cancel()
				}
				res, err := svc.Solve(runCtx, run.Algorithm, initial, usecase.SolveOptions{Heuristic: run.Heuristic})
				rows[i] = benchRow{Algorithm: run.Algorithm, Heuristic: run.Heuristic, Result: res, Err: err}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		printBenchTable(rows)
		if csvPath != "" {
			if err := writeBenchCSV(csvPath, cfg.Seed, rows); err != nil {
				return err
			}
			logger.Info("wrote benchmark results", "path", csvPath)
		}
		return nil
	},
}

func printBenchTable(rows []benchRow) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tHEURISTIC\tFOUND\tDEPTH\tNODES\tFRONTIER\tTIME")
	for _, r := range rows {
		heur := r.Heuristic
		if heur == "" {
			heur = "-"
		}
		if r.Err != nil {
			fmt.Fprintf(w, "%s\t%s\terror: %v\t\t\t\t\n", r.Algorithm, heur, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%t\t%d\t%d\t%d\t%s\n",
			r.Algorithm, heur, r.Result.Found, r.Result.Depth(),
			r.Result.NodesExplored, r.Result.PeakFrontier,
			r.Result.Duration.Round(time.Microsecond))
	}
	w.Flush()
}

func writeBenchCSV(path string, seed int64, rows []benchRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"algorithm", "heuristic", "seed", "found", "depth", "nodes", "frontier", "seconds"}); err != nil {
		return err
	}
	for _, r := range rows {
		if r.Err != nil {
			continue
		}
		rec := []string{
			r.Algorithm,
			r.Heuristic,
			strconv.FormatInt(seed, 10),
			strconv.FormatBool(r.Result.Found),
			strconv.Itoa(r.Result.Depth()),
			strconv.Itoa(r.Result.NodesExplored),
			strconv.Itoa(r.Result.PeakFrontier),
			strconv.FormatFloat(r.Result.Duration.Seconds(), 'f', 4, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(benchCmd)
	puzzleFlags(benchCmd)
	benchCmd.Flags().Duration("timeout", 30*time.Second, "per-run timeout (0 = none)")
	benchCmd.Flags().String("csv", "", "write results to this CSV file")
}
