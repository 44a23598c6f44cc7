package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/ports"
)

func TestRenderMoves(t *testing.T) {
	moves := []domain.Move{{Src: 0, Dst: 2}, {Src: 2, Dst: 1}}
	assert.Equal(t, "0->2 2->1", RenderMoves(moves))
	assert.Equal(t, "", RenderMoves(nil))
}

func TestRenderResult(t *testing.T) {
	r := ports.Result{
		Found:         true,
		Moves:         []domain.Move{{Src: 0, Dst: 2}},
		NodesExplored: 12,
		PeakFrontier:  5,
	}
	out := RenderResult(r)
	assert.Contains(t, out, "Result: Success")
	assert.Contains(t, out, "Depth: 1")
	assert.Contains(t, out, "Nodes explored: 12")
	assert.Contains(t, out, "Max frontier size: 5")

	out = RenderResult(ports.Result{})
	assert.Contains(t, out, "Result: Failure")
}

func TestRenderStateShape(t *testing.T) {
	s := domain.State{
		Capacity: 2,
		Tubes:    []domain.Tube{{'R', 'G'}, {'G'}, {}},
	}
	out := RenderState(s)
	// One line per fill level plus separator and index rows.
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[len(lines)-1], "2")
}
