package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/search"
)

func TestNewRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name string
		cfg  domain.Config
	}{
		{"too few tubes", domain.Config{Tubes: 4, Colors: 3, ScrambleLimit: 100}},
		{"too many tubes", domain.Config{Tubes: 13, Colors: 3, ScrambleLimit: 100}},
		{"too few colors", domain.Config{Tubes: 5, Colors: 2, ScrambleLimit: 100}},
		{"no empty tubes left", domain.Config{Tubes: 6, Colors: 5, ScrambleLimit: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg)
			require.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	cfg := domain.Config{Tubes: 5, Colors: 3, Seed: 42, ScrambleLimit: 1000}

	first, err := New(cfg)
	require.NoError(t, err)
	a, _, err := first.Generate(context.Background())
	require.NoError(t, err)

	second, err := New(cfg)
	require.NoError(t, err)
	b, _, err := second.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, a.Capacity, b.Capacity)
}

func TestGeneratedPuzzleIsNonTrivialAndSolvable(t *testing.T) {
	seeds := []int64{1, 42, 1234}
	for _, seed := range seeds {
		cfg := domain.Config{Tubes: 5, Colors: 3, Seed: seed, ScrambleLimit: 1000}
		g, err := New(cfg)
		require.NoError(t, err)
		state, stats, err := g.Generate(context.Background())
		require.NoError(t, err, "seed %d", seed)
		assert.Positive(t, stats.Nodes, "oracle did not run for seed %d", seed)

		require.False(t, state.IsGoal(), "seed %d produced a trivial puzzle", seed)
		require.NoError(t, state.Validate())

		// Conservation: every color carries exactly one tube's worth.
		units := state.Units()
		require.Len(t, units, cfg.Colors)
		for c, n := range units {
			assert.Equal(t, domain.DefaultCapacity, n, "color %q", c)
		}

		// Ground truth with an unbounded search.
		bfs, err := search.New("bfs", search.Options{})
		require.NoError(t, err)
		res, err := bfs.Solve(context.Background(), state)
		require.NoError(t, err)
		assert.True(t, res.Found, "seed %d puzzle not solvable", seed)
	}
}

func TestGenerateLargerConfig(t *testing.T) {
	cfg := domain.Config{Tubes: 8, Colors: 6, Seed: 7, ScrambleLimit: 2000}
	g, err := New(cfg)
	require.NoError(t, err)
	state, _, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, state.Tubes, 8)
	assert.False(t, state.IsGoal())
}

func TestGenerateHonorsCancellation(t *testing.T) {
	cfg := domain.Config{Tubes: 5, Colors: 3, Seed: 42, ScrambleLimit: 1000}
	g, err := New(cfg)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = g.Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
