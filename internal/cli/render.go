// Package cli renders puzzle states and solver results for the
// terminal.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/ports"
)

// ansi color per palette token; lipgloss degrades gracefully on
// terminals without color support.
var tokenColors = map[domain.Color]lipgloss.Color{
	'R': lipgloss.Color("9"),
	'G': lipgloss.Color("10"),
	'B': lipgloss.Color("12"),
	'Y': lipgloss.Color("11"),
	'P': lipgloss.Color("13"),
	'C': lipgloss.Color("14"),
	'M': lipgloss.Color("5"),
	'O': lipgloss.Color("208"),
	'W': lipgloss.Color("15"),
	'K': lipgloss.Color("8"),
	'L': lipgloss.Color("120"),
	'N': lipgloss.Color("27"),
}

var faint = lipgloss.NewStyle().Faint(true)

func cell(c domain.Color) string {
	if col, ok := tokenColors[c]; ok {
		return lipgloss.NewStyle().Foreground(col).Bold(true).Render(string(rune(c)))
	}
	return string(rune(c))
}

// RenderState draws the tubes level by level, top row first, with
// colorized tokens and tube indices underneath.
func RenderState(s domain.State) string {
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
				cells[i] = cell(t[level])
			} else {
				cells[i] = " "
			}
		}
		b.WriteString(strings.Join(cells, faint.Render(" | ")))
		b.WriteByte('\n')
	}
	b.WriteString(faint.Render(strings.Repeat("--", len(s.Tubes))))
	b.WriteByte('\n')
	idx := make([]string, len(s.Tubes))
	for i := range s.Tubes {
		idx[i] = fmt.Sprintf("%d", i)
	}
	b.WriteString(faint.Render(strings.Join(idx, "   ")))
	return b.String()
}

// RenderMoves joins a solution as "0->2 2->4 ...".
func RenderMoves(moves []domain.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// RenderResult summarizes one solve outcome.
func RenderResult(r ports.Result) string {
	status := "Success"
	if !r.Found {
		status = "Failure"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Result: %s\n", status)
	fmt.Fprintf(&b, "Depth: %d\n", r.Depth())
	fmt.Fprintf(&b, "Moves: %s\n", RenderMoves(r.Moves))
	fmt.Fprintf(&b, "Nodes explored: %d\n", r.NodesExplored)
	fmt.Fprintf(&b, "Max frontier size: %d\n", r.PeakFrontier)
	fmt.Fprintf(&b, "Time: %.4fs", r.Duration.Seconds())
	return b.String()
}
