// Package types contains shared type definitions for the cubesolver application.
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidNotation is returned when a move token cannot be parsed.
var ErrInvalidNotation = errors.New("types: invalid move notation")

// Axis identifies the rotation axis class of a slice move.
type Axis byte

const (
	Horizontal Axis = 'h' // row slice, rotates around the vertical axis
	Vertical   Axis = 'v' // column slice, rotates around the left-right axis
	Lateral    Axis = 's' // depth slice, rotates around the front-back axis
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "h"
	case Vertical:
		return "v"
	case Lateral:
		return "s"
	default:
		return "?"
	}
}

// Valid reports whether the axis is one of the three known classes.
func (a Axis) Valid() bool {
	return a == Horizontal || a == Vertical || a == Lateral
}

// Direction is the turn direction of a slice move.
type Direction int

const (
	CW  Direction = 1  // Clockwise quarter turn
	CCW Direction = -1 // Counter-clockwise quarter turn
)

// Move represents a single slice move: which axis class, which layer
// along that axis, and which direction to turn.
type Move struct {
	Axis      Axis      `json:"axis"`
	Layer     int       `json:"layer"`
	Direction Direction `json:"dir"`
}

// Notation returns the token form of the move: axis letter followed by
// the layer index, with a trailing apostrophe for counter-clockwise.
// Examples: h0, v2', s1
func (m Move) Notation() string {
	suffix := ""
	if m.Direction == CCW {
		suffix = "'"
	}
	return m.Axis.String() + strconv.Itoa(m.Layer) + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes this move.
func (m Move) Inverse() Move {
	inv := m
	inv.Direction = -m.Direction
	return inv
}

// IsCancellation reports whether the other move undoes this move.
func (m Move) IsCancellation(other Move) bool {
	return m.Axis == other.Axis && m.Layer == other.Layer &&
		m.Direction == -other.Direction
}

// ParseMove parses a move token.
// Examples: h0, h0', v12, s3'
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	axis := Axis(s[0])
	if !axis.Valid() {
		return Move{}, fmt.Errorf("%w: unknown axis in %q", ErrInvalidNotation, s)
	}

	dir := CW
	digits := s[1:]
	if strings.HasSuffix(digits, "'") || strings.HasSuffix(digits, "`") {
		dir = CCW
		digits = digits[:len(digits)-1]
	}

	layer, err := strconv.Atoi(digits)
	if err != nil || layer < 0 {
		return Move{}, fmt.Errorf("%w: bad layer in %q", ErrInvalidNotation, s)
	}

	return Move{Axis: axis, Layer: layer, Direction: dir}, nil
}

// ParseMoves parses a space-separated sequence of move tokens.
// Example: "h0 v1' s2"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated token string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves: each move inverted,
// in reverse order.
func InvertMoves(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// Catalog returns every distinct move available on an NxNxN puzzle:
// three axis classes, n layers each, both directions.
func Catalog(n int) []Move {
	moves := make([]Move, 0, 6*n)
	for _, axis := range []Axis{Horizontal, Vertical, Lateral} {
		for layer := 0; layer < n; layer++ {
			for _, dir := range []Direction{CW, CCW} {
				moves = append(moves, Move{Axis: axis, Layer: layer, Direction: dir})
			}
		}
	}
	return moves
}
