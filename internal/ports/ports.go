package ports

import (
	"context"
	"time"

	"svw.info/watersort/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Result is the outcome of one solve call. Exhausting the search
// space is reported here via Found, never as an error.
type Result struct {
	Found         bool
	Moves         []domain.Move
	NodesExplored int
	PeakFrontier  int
	Duration      time.Duration
}

// Depth is the solution length in moves.
func (r Result) Depth() int { return len(r.Moves) }

// Solver runs one search algorithm over the puzzle state space.
type Solver interface {
	Solve(ctx context.Context, initial domain.State) (Result, error)
}

// Generator creates reproducible, solver-verified puzzles.
type Generator interface {
	Generate(ctx context.Context) (domain.State, Stats, error)
}

// Advisor suggests a single promising move for manual play.
type Advisor interface {
	Hint(ctx context.Context, s domain.State) (domain.Move, bool, error)
}
