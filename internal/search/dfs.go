package search

import (
	"context"
	"time"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/ports"
)

// DFS expands states in LIFO order. It does not promise a shortest
// solution; the explored set alone guards against cycles unless a
// DepthLimit cutoff is given.
type DFS struct {
	DepthLimit int
}

func (d *DFS) Solve(ctx context.Context, initial domain.State) (ports.Result, error) {
	if err := initial.Validate(); err != nil {
		return ports.Result{}, err
	}
	start := time.Now()
	stack := []*node{{state: initial}}
	explored := make(map[string]bool)
	nodes := 0
	peak := 1

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return ports.Result{NodesExplored: nodes, PeakFrontier: peak, Duration: time.Since(start)}, err
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		key := cur.state.Key()
		if explored[key] {
			continue
		}
		explored[key] = true
		nodes++
		if cur.state.IsGoal() {
			return ports.Result{
				Found:         true,
				Moves:         cur.path(),
				NodesExplored: nodes,
				PeakFrontier:  peak,
				Duration:      time.Since(start),
			}, nil
		}
		if d.DepthLimit > 0 && cur.depth >= d.DepthLimit {
			continue
		}
		moves := cur.state.LegalMoves()
		// Push in reverse so the lowest (src, dst) pour is tried first.
		for i := len(moves) - 1; i >= 0; i-- {
			next, err := cur.state.Apply(moves[i])
			if err != nil {
				return ports.Result{}, err
			}
			if explored[next.Key()] {
				continue
			}
			stack = append(stack, &node{state: next, move: moves[i], parent: cur, depth: cur.depth + 1})
		}
		if len(stack) > peak {
			peak = len(stack)
		}
	}
	return ports.Result{NodesExplored: nodes, PeakFrontier: peak, Duration: time.Since(start)}, nil
}
