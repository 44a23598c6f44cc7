package search

import (
	"context"
	"time"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/ports"
)

// BFS expands states in FIFO order. With uniform step cost it is
// guaranteed to return a shortest solution. NodeLimit, when set,
// turns it into the bounded oracle the generator uses.
type BFS struct {
	NodeLimit int
}

func (b *BFS) Solve(ctx context.Context, initial domain.State) (ports.Result, error) {
	if err := initial.Validate(); err != nil {
		return ports.Result{}, err
	}
	start := time.Now()
	frontier := []*node{{state: initial}}
	explored := make(map[string]bool)
	nodes := 0
	peak := 1

	for head := 0; head < len(frontier); head++ {
		if err := ctx.Err(); err != nil {
			return ports.Result{NodesExplored: nodes, PeakFrontier: peak, Duration: time.Since(start)}, err
		}
		cur := frontier[head]
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
		if b.NodeLimit > 0 && nodes >= b.NodeLimit {
			break
		}
		for _, m := range cur.state.LegalMoves() {
			next, err := cur.state.Apply(m)
			if err != nil {
				return ports.Result{}, err
			}
			if explored[next.Key()] {
				continue
			}
			frontier = append(frontier, &node{state: next, move: m, parent: cur, depth: cur.depth + 1})
		}
		if pending := len(frontier) - head - 1; pending > peak {
			peak = pending
		}
	}
	return ports.Result{NodesExplored: nodes, PeakFrontier: peak, Duration: time.Since(start)}, nil
}
