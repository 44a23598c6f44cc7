package hint

import (
	"context"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/heuristics"
)

// Advisor suggests a single promising pour for manual play: the
// legal move whose successor scores lowest under the configured
// heuristic, ties going to the first move in enumeration order.
type Advisor struct {
	Heuristic heuristics.Func
}

// New builds an advisor; a nil heuristic falls back to blocking.
func New(h heuristics.Func) *Advisor {
	if h == nil {
		h = heuristics.Blocking
	}
	return &Advisor{Heuristic: h}
}

// Hint returns the suggested move, or ok=false on a dead state.
func (a *Advisor) Hint(ctx context.Context, s domain.State) (domain.Move, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Move{}, false, err
	}
	if err := s.Validate(); err != nil {
		return domain.Move{}, false, err
	}
	var best domain.Move
	bestScore := 0
	found := false
	for _, m := range s.LegalMoves() {
		next, err := s.Apply(m)
		if err != nil {
			return domain.Move{}, false, err
		}
		score := a.Heuristic(next)
		if !found || score < bestScore {
			best, bestScore, found = m, score, true
		}
	}
	return best, found, nil
}
