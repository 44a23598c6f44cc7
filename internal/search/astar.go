package search

import (
	"container/heap"
	"context"
	"time"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/heuristics"
	"svw.info/watersort/internal/ports"
)

// AStar expands states by ascending g+h, ties broken FIFO by
// insertion order so runs are deterministic. With an admissible
// heuristic the returned solution is shortest.
type AStar struct {
	Heuristic heuristics.Func
}

type openItem struct {
	n   *node
	f   int
	seq int
}

type openHeap []*openItem

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h openHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x interface{}) { *h = append(*h, x.(*openItem)) }
func (h *openHeap) Pop() interface{} {
	old := *h
	it := old[len(old)-1]
	*h = old[:len(old)-1]
	return it
}

func (a *AStar) Solve(ctx context.Context, initial domain.State) (ports.Result, error) {
	if a.Heuristic == nil {
		return ports.Result{}, ErrMissingHeuristic
	}
	if err := initial.Validate(); err != nil {
		return ports.Result{}, err
	}
	start := time.Now()
	open := &openHeap{{n: &node{state: initial}, f: a.Heuristic(initial)}}
	heap.Init(open)
	explored := make(map[string]bool)
	nodes := 0
	peak := 1
	seq := 0

	for open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return ports.Result{NodesExplored: nodes, PeakFrontier: peak, Duration: time.Since(start)}, err
		}
		cur := heap.Pop(open).(*openItem).n
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
		for _, m := range cur.state.LegalMoves() {
			next, err := cur.state.Apply(m)
			if err != nil {
				return ports.Result{}, err
			}
			if explored[next.Key()] {
				continue
			}
			seq++
			child := &node{state: next, move: m, parent: cur, depth: cur.depth + 1}
			heap.Push(open, &openItem{n: child, f: child.depth + a.Heuristic(next), seq: seq})
		}
		if open.Len() > peak {
			peak = open.Len()
		}
	}
	return ports.Result{NodesExplored: nodes, PeakFrontier: peak, Duration: time.Since(start)}, nil
}
