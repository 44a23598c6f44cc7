// Package generator produces reproducible, solver-verified puzzle
// states. Candidates come from a seeded walk of single-unit un-pours
// away from the solved configuration; a node-limited breadth-first
// oracle then confirms the goal is reachable before a candidate is
// accepted.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/ports"
	"svw.info/watersort/internal/search"
)

// ErrUnsolvable reports that the retry budget ran out without a
// verified-solvable candidate. Callers may retry with another seed.
var ErrUnsolvable = errors.New("could not produce a solvable puzzle")

// maxAttempts bounds the regenerate-and-retry loop. Each attempt
// derives a fresh seed and shortens the scramble walk, so later
// attempts trade difficulty for a near-certain oracle pass.
const maxAttempts = 8

// WalkGenerator scrambles the solved configuration and filters the
// result through a bounded uninformed search.
type WalkGenerator struct {
	cfg    domain.Config
	oracle ports.Solver
}

// New validates cfg and wires the generator with its BFS oracle,
// node-limited to the configured scramble limit.
func New(cfg domain.Config) (*WalkGenerator, error) {
	cfg, err := cfg.Normalized()
	if err != nil {
		return nil, err
	}
	oracle, err := search.New("bfs", search.Options{NodeLimit: cfg.ScrambleLimit})
	if err != nil {
		return nil, err
	}
	return &WalkGenerator{cfg: cfg, oracle: oracle}, nil
}

// Generate returns a non-trivial puzzle state that the oracle solved
// within the scramble limit. Identical configs always yield an
// identical puzzle.
func (g *WalkGenerator) Generate(ctx context.Context) (domain.State, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	seed := g.cfg.Seed
	baseWalk := g.cfg.Colors * g.cfg.Capacity
	if baseWalk > g.cfg.ScrambleLimit {
		baseWalk = g.cfg.ScrambleLimit
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.State{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		walk := baseWalk - attempt*baseWalk/maxAttempts
		if walk < 3 {
			walk = 3
		}
		if walk > g.cfg.ScrambleLimit {
			walk = g.cfg.ScrambleLimit
		}
		cand := g.scramble(rand.New(rand.NewSource(seed)), walk)
		seed = deriveSeed(seed)
		if cand.IsGoal() {
			continue
		}
		res, err := g.oracle.Solve(ctx, cand)
		nodes += res.NodesExplored
		if err != nil {
			return domain.State{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if res.Found {
			return cand, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}
	}
	return domain.State{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)},
		fmt.Errorf("%w after %d attempts (seed %d)", ErrUnsolvable, maxAttempts, g.cfg.Seed)
}

// scramble walks away from the solved state by applying up to steps
// single-unit un-pours chosen by rng.
func (g *WalkGenerator) scramble(rng *rand.Rand, steps int) domain.State {
	cur := domain.Solved(g.cfg)
	for i := 0; i < steps; i++ {
		preds := unpours(cur)
		if len(preds) == 0 {
			break
		}
		cur = applyUnpour(cur, preds[rng.Intn(len(preds))])
	}
	return cur
}

// unpour undoes one forward pour unit: the top unit of Dst moves
// back onto Src. It is only recorded when the corresponding forward
// move Src->Dst would be legal on the resulting state.
type unpour struct {
	Src, Dst int
}

// unpours enumerates candidate un-pours in ascending (dst, src)
// order so the seeded walk is reproducible.
func unpours(s domain.State) []unpour {
	out := make([]unpour, 0, len(s.Tubes))
	for dst, dt := range s.Tubes {
		if len(dt) == 0 {
			continue
		}
		// The top unit can have arrived by a pour only if it sits on
		// the bottom or on its own color.
		if len(dt) > 1 && dt[len(dt)-1] != dt[len(dt)-2] {
			continue
		}
		for src, st := range s.Tubes {
			if src == dst || len(st) >= s.Capacity {
				continue
			}
			out = append(out, unpour{Src: src, Dst: dst})
		}
	}
	return out
}

func applyUnpour(s domain.State, u unpour) domain.State {
	next := s.Clone()
	dt := next.Tubes[u.Dst]
	c := dt[len(dt)-1]
	next.Tubes[u.Dst] = dt[:len(dt)-1]
	next.Tubes[u.Src] = append(next.Tubes[u.Src], c)
	return next
}

// deriveSeed steps the retry seed with a 64-bit LCG so every attempt
// is reproducible from the original seed.
func deriveSeed(s int64) int64 {
	return s*6364136223846793005 + 1442695040888963407
}
