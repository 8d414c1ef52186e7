package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesolver/internal/search"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	facetStyles = map[byte]lipgloss.Style{
		'W': lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		'Y': lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		'G': lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		'B': lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		'R': lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		'O': lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	}
)

// renderNet draws a serialized state as an unfolded cube net:
//
//	    U
//	L F R B
//	    D
func renderNet(state string) string {
	n := dimensionOf(state)
	if n == 0 {
		return state
	}
	// Faces are serialized U, D, F, B, R, L row-major.
	faceRow := func(face, r int) string {
		var b strings.Builder
		off := face*n*n + r*n
		for c := 0; c < n; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			sym := state[off+c]
			if style, ok := facetStyles[sym]; ok {
				b.WriteString(style.Render(string(sym)))
			} else {
				b.WriteByte(sym)
			}
		}
		return b.String()
	}
	pad := strings.Repeat(" ", 2*n)
	var out strings.Builder
	for r := 0; r < n; r++ {
		out.WriteString(pad + faceRow(0, r) + "\n")
	}
	for r := 0; r < n; r++ {
		out.WriteString(faceRow(5, r) + " " + faceRow(2, r) + " " + faceRow(4, r) + " " + faceRow(3, r) + "\n")
	}
	for r := 0; r < n; r++ {
		out.WriteString(pad + faceRow(1, r) + "\n")
	}
	return out.String()
}

func dimensionOf(state string) int {
	for n := 2; 6*n*n <= len(state); n++ {
		if 6*n*n == len(state) {
			return n
		}
	}
	return 0
}

// printAttempts writes the per-strategy breakdown of a solve report.
func printAttempts(attempts []search.Attempt) {
	if len(attempts) == 0 {
		return
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-14s %-10s %10s %6s", "STRATEGY", "OUTCOME", "ELAPSED", "MOVES")))
	for _, a := range attempts {
		moves := "-"
		if a.Moves >= 0 {
			moves = fmt.Sprintf("%d", a.Moves)
		}
		fmt.Printf("%-14s %-10s %10s %6s\n", a.Strategy, a.Outcome, a.Elapsed.Round(time.Millisecond), moves)
	}
}
