package domain

import (
	"fmt"
	"strings"
)

// Solved builds the goal configuration for cfg: one full uniform tube
// per color, then the empty maneuvering tubes.
func Solved(cfg Config) State {
	cfg = cfg.withDefaults()
	tubes := make([]Tube, cfg.Tubes)
	for i := 0; i < cfg.Colors; i++ {
		t := make(Tube, cfg.Capacity)
		for j := range t {
			t[j] = Color(Palette[i])
		}
		tubes[i] = t
	}
	for i := cfg.Colors; i < cfg.Tubes; i++ {
		tubes[i] = Tube{}
	}
	return State{Capacity: cfg.Capacity, Tubes: tubes}
}

// Clone deep-copies the state. Apply relies on this so that no state
// is ever mutated after creation.
func (s State) Clone() State {
	tubes := make([]Tube, len(s.Tubes))
	for i, t := range s.Tubes {
		tubes[i] = append(Tube(nil), t...)
	}
	return State{Capacity: s.Capacity, Tubes: tubes}
}

// Key is the canonical value identity of a state, used by the search
// engines to deduplicate visited states.
func (s State) Key() string {
	var b strings.Builder
	b.Grow(len(s.Tubes) * (s.Capacity + 1))
	for i, t := range s.Tubes {
		if i > 0 {
			b.WriteByte('|')
		}
		for _, c := range t {
			b.WriteByte(byte(c))
		}
	}
	return b.String()
}

// IsGoal reports whether every tube is empty or full with a single
// uniform color.
func (s State) IsGoal() bool {
	for _, t := range s.Tubes {
		if len(t) == 0 {
			continue
		}
		if len(t) != s.Capacity {
			return false
		}
		for _, c := range t[1:] {
			if c != t[0] {
				return false
			}
		}
	}
	return true
}

// topRun returns the top color of tube i and the length of its
// contiguous run. Callers must ensure the tube is non-empty.
func (s State) topRun(i int) (Color, int) {
	t := s.Tubes[i]
	top := t[len(t)-1]
	run := 1
	for j := len(t) - 2; j >= 0 && t[j] == top; j-- {
		run++
	}
	return top, run
}

// LegalMoves enumerates every legal pour in ascending (src, dst)
// order, so traversal order is reproducible across runs.
func (s State) LegalMoves() []Move {
	moves := make([]Move, 0, len(s.Tubes))
	for src, st := range s.Tubes {
		if len(st) == 0 {
			continue
		}
		top, _ := s.topRun(src)
		for dst, dt := range s.Tubes {
			if src == dst {
				continue
			}
			if len(dt) == s.Capacity {
				continue
			}
			if len(dt) > 0 && dt[len(dt)-1] != top {
				continue
			}
			moves = append(moves, Move{Src: src, Dst: dst})
		}
	}
	return moves
}

// Apply pours the maximal run of the source's top color that fits
// into the destination and returns the resulting state. The receiver
// is never modified; illegal moves return ErrInvalidMove.
func (s State) Apply(m Move) (State, error) {
	if m.Src < 0 || m.Src >= len(s.Tubes) || m.Dst < 0 || m.Dst >= len(s.Tubes) {
		return State{}, fmt.Errorf("%w: %s out of range", ErrInvalidMove, m)
	}
	if m.Src == m.Dst {
		return State{}, fmt.Errorf("%w: %s pours into itself", ErrInvalidMove, m)
	}
	if len(s.Tubes[m.Src]) == 0 {
		return State{}, fmt.Errorf("%w: %s source tube is empty", ErrInvalidMove, m)
	}
	if len(s.Tubes[m.Dst]) >= s.Capacity {
		return State{}, fmt.Errorf("%w: %s destination tube is full", ErrInvalidMove, m)
	}
	top, run := s.topRun(m.Src)
	if dt := s.Tubes[m.Dst]; len(dt) > 0 && dt[len(dt)-1] != top {
		return State{}, fmt.Errorf("%w: %s destination top color differs", ErrInvalidMove, m)
	}
	next := s.Clone()
	room := s.Capacity - len(next.Tubes[m.Dst])
	if run > room {
		run = room
	}
	src := next.Tubes[m.Src]
	for i := 0; i < run; i++ {
		next.Tubes[m.Dst] = append(next.Tubes[m.Dst], top)
	}
	next.Tubes[m.Src] = src[:len(src)-run]
	return next, nil
}

// Units counts liquid per color. Every legal move preserves this
// census (conservation of liquid).
func (s State) Units() map[Color]int {
	units := make(map[Color]int)
	for _, t := range s.Tubes {
		for _, c := range t {
			units[c]++
		}
	}
	return units
}

// Validate rejects malformed states handed in by external callers.
func (s State) Validate() error {
	if s.Capacity < 1 {
		return fmt.Errorf("%w: state capacity must be positive", ErrConfiguration)
	}
	if len(s.Tubes) == 0 {
		return fmt.Errorf("%w: state has no tubes", ErrConfiguration)
	}
	for i, t := range s.Tubes {
		if len(t) > s.Capacity {
			return fmt.Errorf("%w: tube %d exceeds capacity %d", ErrConfiguration, i, s.Capacity)
		}
		for _, c := range t {
			if !strings.ContainsRune(Palette, rune(c)) {
				return fmt.Errorf("%w: tube %d holds unknown color %q", ErrConfiguration, i, c)
			}
		}
	}
	return nil
}

// String renders the tubes level by level, top row first, with tube
// indices underneath.
func (s State) String() string {
	height := 0
	for _, t := range s.Tubes {
		if len(t) > height {
			height = len(t)
		}
	}
	var b strings.Builder
	for level := height - 1; level >= 0; level-- {
		cells := make([]string, len(s.Tubes))
		for i, t := range s.Tubes {
			if level < len(t) {
				cells[i] = string(rune(t[level]))
			} else {
				cells[i] = " "
			}
		}
		b.WriteString(strings.Join(cells, " | "))
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("--", len(s.Tubes)))
	b.WriteByte('\n')
	idx := make([]string, len(s.Tubes))
	for i := range s.Tubes {
		idx[i] = fmt.Sprintf("%d", i)
	}
	b.WriteString(strings.Join(idx, "   "))
	return b.String()
}
