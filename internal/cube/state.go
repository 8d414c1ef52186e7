// Package cube provides an immutable NxNxN cube model and the slice-move engine.
package cube

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for the cube package.
var (
	ErrInvalidMove  = errors.New("cube: invalid move")
	ErrInvalidState = errors.New("cube: invalid state")
)

// Color represents a facet color, stored as its symbol byte.
type Color byte

const (
	White  Color = 'W' // Up face when solved
	Yellow Color = 'Y' // Down face when solved
	Green  Color = 'G' // Front face when solved
	Blue   Color = 'B' // Back face when solved
	Red    Color = 'R' // Right face when solved
	Orange Color = 'O' // Left face when solved
)

// Palette is the set of legal facet symbols.
var Palette = []Color{White, Yellow, Green, Blue, Red, Orange}

func (c Color) String() string {
	return string(byte(c))
}

// Face represents a cube face.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// SolvedColor returns the color of a face when solved.
func (f Face) SolvedColor() Color {
	switch f {
	case U:
		return White
	case D:
		return Yellow
	case F:
		return Green
	case B:
		return Blue
	case R:
		return Red
	case L:
		return Orange
	default:
		return White
	}
}

// State is an immutable NxNxN cube configuration. Faces are stored in the
// order U, D, F, B, R, L, each face row-major, one symbol byte per facet.
// State is a comparable value: two states are equal iff their symbol
// sequences are equal, so it can be used directly as a map key. Moves never
// mutate a State; Apply returns a new value.
type State struct {
	n     int
	cells string
}

// New creates a solved NxNxN cube. Dimensions below 2 are rejected.
func New(n int) (State, error) {
	if n < 2 {
		return State{}, fmt.Errorf("%w: dimension %d", ErrInvalidState, n)
	}
	var sb strings.Builder
	sb.Grow(6 * n * n)
	for face := Face(0); face < 6; face++ {
		sym := byte(face.SolvedColor())
		for i := 0; i < n*n; i++ {
			sb.WriteByte(sym)
		}
	}
	return State{n: n, cells: sb.String()}, nil
}

// Parse imports a serialized state. The input must be 6*n*n symbols for an
// integer n >= 2, every symbol must belong to the palette, and each symbol
// must appear a multiple of n*n times. Full physical reachability is not
// checked.
func Parse(s string) (State, error) {
	if len(s) == 0 || len(s)%6 != 0 {
		return State{}, fmt.Errorf("%w: length %d is not 6*n*n", ErrInvalidState, len(s))
	}
	n := int(math.Round(math.Sqrt(float64(len(s) / 6))))
	if n < 2 || 6*n*n != len(s) {
		return State{}, fmt.Errorf("%w: length %d is not 6*n*n", ErrInvalidState, len(s))
	}

	counts := make(map[byte]int)
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}
	for sym, count := range counts {
		if !isPaletteSymbol(sym) {
			return State{}, fmt.Errorf("%w: symbol %q outside palette", ErrInvalidState, sym)
		}
		if count%(n*n) != 0 {
			return State{}, fmt.Errorf("%w: symbol %q appears %d times, not a multiple of %d",
				ErrInvalidState, sym, count, n*n)
		}
	}

	return State{n: n, cells: s}, nil
}

func isPaletteSymbol(sym byte) bool {
	for _, c := range Palette {
		if byte(c) == sym {
			return true
		}
	}
	return false
}

// Size returns the cube dimension N.
func (s State) Size() int {
	return s.n
}

// String exports the state as its fixed-length symbol sequence.
// Parse(s.String()) reproduces s.
func (s State) String() string {
	return s.cells
}

// At returns the color of the facet at (face, row, col).
func (s State) At(face Face, row, col int) Color {
	return Color(s.cells[int(face)*s.n*s.n+row*s.n+col])
}

// IsSolved reports whether every face is a single uniform color.
func (s State) IsSolved() bool {
	if s.n == 0 {
		return false
	}
	area := s.n * s.n
	for face := 0; face < 6; face++ {
		first := s.cells[face*area]
		for i := 1; i < area; i++ {
			if s.cells[face*area+i] != first {
				return false
			}
		}
	}
	return true
}

// MisplacedFacets counts, per face, the facets that differ from the face's
// most common symbol and sums the counts. Measuring against the majority
// rather than the canonical color keeps the count a lower bound on the work
// left for any uniform target, including whole-cube rotations of solved.
func (s State) MisplacedFacets() int {
	area := s.n * s.n
	misplaced := 0
	for face := 0; face < 6; face++ {
		var counts [256]int
		most := 0
		for i := 0; i < area; i++ {
			sym := s.cells[face*area+i]
			counts[sym]++
			if counts[sym] > most {
				most = counts[sym]
			}
		}
		misplaced += area - most
	}
	return misplaced
}

// CornerPattern returns the state with every non-corner facet blanked out.
// Corner facets are the cells whose row and column are both on a face edge.
// The result keys a partial pattern database: states sharing corner facets
// share the pattern.
func (s State) CornerPattern() string {
	buf := []byte(s.cells)
	for face := 0; face < 6; face++ {
		for row := 0; row < s.n; row++ {
			for col := 0; col < s.n; col++ {
				onEdge := (row == 0 || row == s.n-1) && (col == 0 || col == s.n-1)
				if !onEdge {
					buf[face*s.n*s.n+row*s.n+col] = '.'
				}
			}
		}
	}
	return string(buf)
}
