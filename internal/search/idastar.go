package search

import (
	"context"
	"math"
	"time"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/heuristics"
	"svw.info/watersort/internal/ports"
)

// IDAStar iteratively deepens the A* cost bound, re-running a
// depth-first contour search with the minimum exceeding f-value as
// the next bound. It trades repeated work for a frontier that never
// grows beyond the current path.
type IDAStar struct {
	Heuristic heuristics.Func
	MaxDepth  int
}

const unbounded = math.MaxInt

type idaRun struct {
	ctx      context.Context
	h        heuristics.Func
	maxDepth int
	nodes    int
	peak     int
}

func (s *IDAStar) Solve(ctx context.Context, initial domain.State) (ports.Result, error) {
	if s.Heuristic == nil {
		return ports.Result{}, ErrMissingHeuristic
	}
	if err := initial.Validate(); err != nil {
		return ports.Result{}, err
	}
	maxDepth := s.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultIDAMaxDepth
	}
	start := time.Now()
	run := &idaRun{ctx: ctx, h: s.Heuristic, maxDepth: maxDepth, peak: 1}
	bound := s.Heuristic(initial)

	for {
		onPath := map[string]bool{initial.Key(): true}
		path := make([]domain.Move, 0, bound)
		found, next, err := run.contour(initial, 0, bound, onPath, &path)
		if err != nil {
			return ports.Result{NodesExplored: run.nodes, PeakFrontier: run.peak, Duration: time.Since(start)}, err
		}
		if found {
			return ports.Result{
				Found:         true,
				Moves:         path,
				NodesExplored: run.nodes,
				PeakFrontier:  run.peak,
				Duration:      time.Since(start),
			}, nil
		}
		if next == unbounded {
			// No successor exceeds the bound anywhere: structurally
			// exhausted, not an error.
			return ports.Result{NodesExplored: run.nodes, PeakFrontier: run.peak, Duration: time.Since(start)}, nil
		}
		bound = next
	}
}

// contour runs one depth-first pass under the given f bound and
// reports the minimum f-value seen beyond it.
func (r *idaRun) contour(s domain.State, g, bound int, onPath map[string]bool, path *[]domain.Move) (bool, int, error) {
	if err := r.ctx.Err(); err != nil {
		return false, 0, err
	}
	f := g + r.h(s)
	if f > bound {
		return false, f, nil
	}
	if s.IsGoal() {
		return true, g, nil
	}
	if g >= r.maxDepth {
		return false, unbounded, nil
	}
	r.nodes++
	min := unbounded
	for _, m := range s.LegalMoves() {
		next, err := s.Apply(m)
		if err != nil {
			return false, 0, err
		}
		key := next.Key()
		if onPath[key] {
			continue
		}
		onPath[key] = true
		if len(onPath) > r.peak {
			r.peak = len(onPath)
		}
		*path = append(*path, m)
		found, t, err := r.contour(next, g+1, bound, onPath, path)
		if err != nil {
			return false, 0, err
		}
		if found {
			return true, t, nil
		}
		*path = (*path)[:len(*path)-1]
		delete(onPath, key)
		if t < min {
			min = t
		}
	}
	return false, min, nil
}
