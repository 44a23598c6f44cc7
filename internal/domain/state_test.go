package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mk builds a state from bottom-to-top tube strings, e.g. "RG" is R
// at the bottom with G on top.
func mk(capacity int, tubes ...string) State {
	s := State{Capacity: capacity, Tubes: make([]Tube, len(tubes))}
	for i, spec := range tubes {
		t := make(Tube, len(spec))
		for j := range spec {
			t[j] = Color(spec[j])
		}
		s.Tubes[i] = t
	}
	return s
}

func TestSolvedStateIsGoal(t *testing.T) {
	cfg := Config{Tubes: 5, Colors: 3, Seed: 1, ScrambleLimit: 10}
	s := Solved(cfg)
	require.Len(t, s.Tubes, 5)
	assert.True(t, s.IsGoal())
	for i := 0; i < 3; i++ {
		assert.Len(t, s.Tubes[i], DefaultCapacity)
	}
	for i := 3; i < 5; i++ {
		assert.Empty(t, s.Tubes[i])
	}
}

func TestIsGoal(t *testing.T) {
	cases := []struct {
		name string
		s    State
		want bool
	}{
		{"two full uniform tubes", mk(2, "RR", "GG"), true},
		{"with empty tube", mk(2, "RR", "GG", ""), true},
		{"uniform but not full", mk(2, "RR", "G", "G"), false},
		{"full but mixed", mk(2, "RG", "GR"), false},
		{"all empty", mk(2, "", ""), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.IsGoal())
		})
	}
}

func TestLegalMovesOrderingAndRules(t *testing.T) {
	// Tube 0 full with top G, tube 1 top G, tube 2 empty, tube 3 full.
	s := mk(2, "RG", "G", "", "BB")
	moves := s.LegalMoves()
	// Ascending (src, dst), never src==dst, never onto a full tube,
	// never a mismatched top.
	want := []Move{{0, 1}, {0, 2}, {1, 2}, {3, 2}}
	assert.Equal(t, want, moves)
}

func TestLegalMovesEmptyForDeadState(t *testing.T) {
	s := mk(2, "RG", "GR")
	assert.Empty(t, s.LegalMoves())
}

func TestApplyPoursMaximalFittingRun(t *testing.T) {
	t.Run("whole run fits", func(t *testing.T) {
		s := mk(4, "RR", "R")
		next, err := s.Apply(Move{Src: 0, Dst: 1})
		require.NoError(t, err)
		assert.Equal(t, mk(4, "", "RRR").Key(), next.Key())
	})
	t.Run("run truncated by capacity", func(t *testing.T) {
		s := mk(4, "GRR", "RRR")
		next, err := s.Apply(Move{Src: 0, Dst: 1})
		require.NoError(t, err)
		assert.Equal(t, mk(4, "GR", "RRRR").Key(), next.Key())
	})
	t.Run("pour into empty tube", func(t *testing.T) {
		s := mk(2, "RG", "GR", "")
		next, err := s.Apply(Move{Src: 0, Dst: 2})
		require.NoError(t, err)
		assert.Equal(t, mk(2, "R", "GR", "G").Key(), next.Key())
	})
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	s := mk(2, "RG", "GR", "")
	before := s.Key()
	_, err := s.Apply(Move{Src: 0, Dst: 2})
	require.NoError(t, err)
	assert.Equal(t, before, s.Key())
}

func TestApplyRejectsIllegalMoves(t *testing.T) {
	s := mk(2, "RG", "GR", "", "BB")
	cases := []struct {
		name string
		m    Move
	}{
		{"out of range", Move{Src: 0, Dst: 9}},
		{"negative index", Move{Src: -1, Dst: 1}},
		{"self pour", Move{Src: 1, Dst: 1}},
		{"empty source", Move{Src: 2, Dst: 0}},
		{"full destination", Move{Src: 0, Dst: 3}},
		{"mismatched top", Move{Src: 0, Dst: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Apply(tc.m)
			require.ErrorIs(t, err, ErrInvalidMove)
		})
	}
}

// Apply must accept exactly the moves LegalMoves returns: never an
// error for a listed move, always ErrInvalidMove for the rest.
func TestLegalitySoundness(t *testing.T) {
	states := []State{
		mk(2, "RG", "GR", ""),
		mk(4, "RRGG", "GGRR", "", ""),
		mk(2, "RR", "GG"),
		mk(3, "RGB", "BGR", "GRB", "", ""),
	}
	for _, s := range states {
		legal := make(map[Move]bool)
		for _, m := range s.LegalMoves() {
			legal[m] = true
			_, err := s.Apply(m)
			require.NoError(t, err, "legal move %s rejected on %q", m, s.Key())
		}
		for src := 0; src < len(s.Tubes); src++ {
			for dst := 0; dst < len(s.Tubes); dst++ {
				m := Move{Src: src, Dst: dst}
				if legal[m] {
					continue
				}
				_, err := s.Apply(m)
				require.ErrorIs(t, err, ErrInvalidMove, "move %s accepted on %q", m, s.Key())
			}
		}
	}
}

// Every chain of legal moves preserves the per-color unit census.
func TestColorConservation(t *testing.T) {
	s := mk(4, "RRGG", "GGRR", "", "")
	want := s.Units()
	cur := s
	for step := 0; step < 40; step++ {
		moves := cur.LegalMoves()
		if len(moves) == 0 {
			break
		}
		next, err := cur.Apply(moves[step%len(moves)])
		require.NoError(t, err)
		cur = next
		require.Equal(t, want, cur.Units(), "census drifted at step %d", step)
	}
}

func TestKeyIdentity(t *testing.T) {
	a := mk(2, "RG", "GR", "")
	b := mk(2, "RG", "GR", "")
	c := mk(2, "GR", "RG", "")
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	// Tube order is part of the identity.
	assert.NotEqual(t, mk(2, "RR", "").Key(), mk(2, "", "RR").Key())
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid minimum", Config{Tubes: 5, Colors: 3}, false},
		{"valid maximum", Config{Tubes: 12, Colors: 10}, false},
		{"too few tubes", Config{Tubes: 4, Colors: 3}, true},
		{"too many tubes", Config{Tubes: 13, Colors: 3}, true},
		{"too few colors", Config{Tubes: 5, Colors: 2}, true},
		{"not enough empty tubes", Config{Tubes: 5, Colors: 4}, true},
		{"negative capacity", Config{Tubes: 5, Colors: 3, Capacity: -1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrConfiguration)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStateValidate(t *testing.T) {
	require.NoError(t, mk(2, "RG", "").Validate())
	require.ErrorIs(t, mk(2, "RGB", "").Validate(), ErrConfiguration)
	require.ErrorIs(t, mk(2, "RZ", "").Validate(), ErrConfiguration)
	require.ErrorIs(t, State{}.Validate(), ErrConfiguration)
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "3->10", Move{Src: 3, Dst: 10}.String())
}
