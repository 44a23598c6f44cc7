// Package search implements the four solving strategies over the
// water sort state space: breadth-first, depth-first, A* and IDA*.
// All share one contract: exhausting the reachable space is a normal
// outcome reported through Result.Found, never an error.
package search

import (
	"errors"
	"fmt"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/heuristics"
	"svw.info/watersort/internal/ports"
)

var (
	// ErrUnknownAlgorithm flags a solver name outside Algorithms.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrMissingHeuristic flags an informed search built without a
	// heuristic.
	ErrMissingHeuristic = errors.New("informed search requires a heuristic")
)

// DefaultIDAMaxDepth caps IDA* recursion depth.
const DefaultIDAMaxDepth = 200

// Options carries the algorithm-specific bounds of one solver.
type Options struct {
	// Heuristic guides astar and ida. Required for both.
	Heuristic heuristics.Func
	// DepthLimit cuts off dfs expansion below it. 0 means unlimited.
	DepthLimit int
	// NodeLimit bounds bfs expansions, used by the generator oracle.
	// 0 means unlimited.
	NodeLimit int
	// MaxDepth caps ida recursion. 0 means DefaultIDAMaxDepth.
	MaxDepth int
}

// Algorithms lists the solver names accepted by New.
func Algorithms() []string { return []string{"bfs", "dfs", "astar", "ida"} }

// New builds the named solver. Configuration problems surface here,
// before any search work begins.
func New(name string, opts Options) (ports.Solver, error) {
	switch name {
	case "bfs":
		return &BFS{NodeLimit: opts.NodeLimit}, nil
	case "dfs":
		return &DFS{DepthLimit: opts.DepthLimit}, nil
	case "astar":
		if opts.Heuristic == nil {
			return nil, fmt.Errorf("%w: astar", ErrMissingHeuristic)
		}
		return &AStar{Heuristic: opts.Heuristic}, nil
	case "ida":
		if opts.Heuristic == nil {
			return nil, fmt.Errorf("%w: ida", ErrMissingHeuristic)
		}
		maxDepth := opts.MaxDepth
		if maxDepth == 0 {
			maxDepth = DefaultIDAMaxDepth
		}
		return &IDAStar{Heuristic: opts.Heuristic, MaxDepth: maxDepth}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// node pairs a state with the back-pointer chain that reached it.
type node struct {
	state  domain.State
	move   domain.Move
	parent *node
	depth  int
}

// path rebuilds the move sequence from the root to this node.
func (n *node) path() []domain.Move {
	moves := make([]domain.Move, 0, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		moves = append(moves, cur.move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
