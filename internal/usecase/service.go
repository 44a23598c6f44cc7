package usecase

import (
	"context"
	"errors"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/heuristics"
	"svw.info/watersort/internal/ports"
	"svw.info/watersort/internal/search"
)

// Service is the facade external surfaces (CLI, GUI) consume.
type Service struct {
	Generator ports.Generator
	Advisor   ports.Advisor
}

func NewService(g ports.Generator, a ports.Advisor) *Service {
	return &Service{Generator: g, Advisor: a}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// SolveOptions selects the heuristic and bounds for one solve call.
type SolveOptions struct {
	Heuristic  string
	DepthLimit int
	NodeLimit  int
	MaxDepth   int
}

// Solve runs the named algorithm on initial. Unknown algorithm or
// heuristic names fail before any search work begins.
func (u *Service) Solve(ctx context.Context, algorithm string, initial domain.State, opts SolveOptions) (ports.Result, error) {
	var h heuristics.Func
	if opts.Heuristic != "" {
		var err error
		if h, err = heuristics.Lookup(opts.Heuristic); err != nil {
			return ports.Result{}, err
		}
	}
	solver, err := search.New(algorithm, search.Options{
		Heuristic:  h,
		DepthLimit: opts.DepthLimit,
		NodeLimit:  opts.NodeLimit,
		MaxDepth:   opts.MaxDepth,
	})
	if err != nil {
		return ports.Result{}, err
	}
	return solver.Solve(ctx, initial)
}

func (u *Service) Generate(ctx context.Context) (domain.State, ports.Stats, error) {
	if u.Generator == nil {
		return domain.State{}, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx)
}

func (u *Service) Hint(ctx context.Context, s domain.State) (domain.Move, bool, error) {
	if u.Advisor == nil {
		return domain.Move{}, false, errNotConfigured
	}
	return u.Advisor.Hint(ctx, s)
}

// Pure state operations, delegated for callers that only hold the
// facade.
func (u *Service) LegalMoves(s domain.State) []domain.Move { return s.LegalMoves() }

func (u *Service) Apply(s domain.State, m domain.Move) (domain.State, error) { return s.Apply(m) }

func (u *Service) IsGoal(s domain.State) bool { return s.IsGoal() }

// Heuristics lists the names accepted by SolveOptions.Heuristic.
func (u *Service) Heuristics() []string { return heuristics.Names() }

// Algorithms lists the names accepted by Solve.
func (u *Service) Algorithms() []string { return search.Algorithms() }
