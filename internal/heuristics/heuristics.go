// Package heuristics holds the hand-designed estimators used by the
// informed search algorithms. Each is a pure function of the state,
// non-negative everywhere and zero on goal states; admissibility is
// intended by design, not proven.
package heuristics

import (
	"errors"
	"fmt"
	"sort"

	"svw.info/watersort/internal/domain"
)

// Func maps a state to an estimate of the remaining work.
type Func func(domain.State) int

// ErrHeuristicNotFound flags a lookup of a name not in Available.
var ErrHeuristicNotFound = errors.New("unknown heuristic")

// Entropy penalizes mixed tubes: per non-empty tube, the count of
// distinct colors beyond the first.
func Entropy(s domain.State) int {
	h := 0
	for _, t := range s.Tubes {
		if len(t) == 0 {
			continue
		}
		var seen [256]bool
		distinct := 0
		for _, c := range t {
			if !seen[c] {
				seen[c] = true
				distinct++
			}
		}
		h += distinct - 1
	}
	return h
}

// Completion counts tubes still requiring work: neither empty nor
// already a single uniform full color.
func Completion(s domain.State) int {
	h := 0
	for _, t := range s.Tubes {
		if len(t) == 0 {
			continue
		}
		if len(t) == s.Capacity && uniform(t) {
			continue
		}
		h++
	}
	return h
}

// Blocking counts liquid units buried beneath a differing color, so
// a wrong segment deep in a tube weighs by everything it traps.
func Blocking(s domain.State) int {
	h := 0
	for _, t := range s.Tubes {
		for i := 0; i < len(t)-1; i++ {
			for j := i + 1; j < len(t); j++ {
				if t[j] != t[i] {
					h++
					break
				}
			}
		}
	}
	return h
}

func uniform(t domain.Tube) bool {
	for _, c := range t[1:] {
		if c != t[0] {
			return false
		}
	}
	return true
}

// Available maps heuristic names to their functions.
func Available() map[string]Func {
	return map[string]Func{
		"entropy":    Entropy,
		"completion": Completion,
		"blocking":   Blocking,
	}
}

// Lookup resolves a heuristic by name.
func Lookup(name string) (Func, error) {
	h, ok := Available()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrHeuristicNotFound, name)
	}
	return h, nil
}

// Names lists the available heuristics in stable order.
func Names() []string {
	names := make([]string, 0, len(Available()))
	for name := range Available() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
