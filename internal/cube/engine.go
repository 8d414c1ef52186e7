package cube

import (
	"fmt"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Apply applies a single slice move to the state and returns the result.
// It is pure: the input state is never modified. A move whose layer falls
// outside [0, N) or whose axis or direction is malformed is rejected with
// ErrInvalidMove before anything is computed.
//
// Direction conventions (clockwise as seen from the named face):
//   - Horizontal layer k rotates row k as seen from U; layer 0 also turns
//     the U face, layer N-1 also turns the D face.
//   - Vertical layer k rotates column k as seen from R; layer N-1 also
//     turns the R face, layer 0 also turns the L face.
//   - Lateral layer k rotates the depth-k slice as seen from F; layer 0
//     also turns the F face, layer N-1 also turns the B face.
func Apply(s State, m types.Move) (State, error) {
	if !m.Axis.Valid() || (m.Direction != types.CW && m.Direction != types.CCW) {
		return State{}, fmt.Errorf("%w: %+v", ErrInvalidMove, m)
	}
	if m.Layer < 0 || m.Layer >= s.n {
		return State{}, fmt.Errorf("%w: layer %d out of range [0,%d)", ErrInvalidMove, m.Layer, s.n)
	}

	b := &buffer{n: s.n, cells: []byte(s.cells)}

	switch m.Axis {
	case types.Horizontal:
		b.horizontal(m.Layer, m.Direction)
	case types.Vertical:
		b.vertical(m.Layer, m.Direction)
	case types.Lateral:
		b.lateral(m.Layer, m.Direction)
	}

	return State{n: s.n, cells: string(b.cells)}, nil
}

// ApplyMoves applies a sequence of moves in order.
func ApplyMoves(s State, moves []types.Move) (State, error) {
	cur := s
	for _, m := range moves {
		next, err := Apply(cur, m)
		if err != nil {
			return State{}, err
		}
		cur = next
	}
	return cur, nil
}

// buffer is the mutable scratch space the engine permutes before freezing
// the result back into an immutable State.
type buffer struct {
	n     int
	cells []byte
}

// row returns the facet indices of (face, row) in ascending column order.
func (b *buffer) row(f Face, r int) []int {
	idx := make([]int, b.n)
	base := int(f)*b.n*b.n + r*b.n
	for c := 0; c < b.n; c++ {
		idx[c] = base + c
	}
	return idx
}

// col returns the facet indices of (face, col) in ascending row order.
func (b *buffer) col(f Face, c int) []int {
	idx := make([]int, b.n)
	base := int(f) * b.n * b.n
	for r := 0; r < b.n; r++ {
		idx[r] = base + r*b.n + c
	}
	return idx
}

func reversed(idx []int) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		out[len(idx)-1-i] = v
	}
	return out
}

// cycle moves the contents of strips[0] to strips[1], strips[1] to
// strips[2], strips[2] to strips[3], and strips[3] back to strips[0].
func (b *buffer) cycle(strips [4][]int) {
	tmp := make([]byte, len(strips[3]))
	for i, idx := range strips[3] {
		tmp[i] = b.cells[idx]
	}
	for s := 3; s >= 1; s-- {
		for i := range strips[s] {
			b.cells[strips[s][i]] = b.cells[strips[s-1][i]]
		}
	}
	for i, idx := range strips[0] {
		b.cells[idx] = tmp[i]
	}
}

// cycleDir runs the strip cycle forward for CW, backward for CCW.
func (b *buffer) cycleDir(strips [4][]int, dir types.Direction) {
	if dir == types.CCW {
		strips = [4][]int{strips[0], strips[3], strips[2], strips[1]}
	}
	b.cycle(strips)
}

// rotateFace turns a face 90 degrees in place.
func (b *buffer) rotateFace(f Face, dir types.Direction) {
	n := b.n
	base := int(f) * n * n
	old := make([]byte, n*n)
	copy(old, b.cells[base:base+n*n])
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if dir == types.CW {
				// new[r][c] = old[n-1-c][r]
				b.cells[base+r*n+c] = old[(n-1-c)*n+r]
			} else {
				// new[r][c] = old[c][n-1-r]
				b.cells[base+r*n+c] = old[c*n+(n-1-r)]
			}
		}
	}
}

// horizontal rotates row layer k around the vertical axis. Clockwise (seen
// from above) carries the front row to the left face: F -> L -> B -> R -> F.
func (b *buffer) horizontal(k int, dir types.Direction) {
	strips := [4][]int{
		b.row(F, k),
		b.row(L, k),
		b.row(B, k),
		b.row(R, k),
	}
	b.cycleDir(strips, dir)

	if k == 0 {
		b.rotateFace(U, dir)
	}
	if k == b.n-1 {
		b.rotateFace(D, -dir)
	}
}

// vertical rotates column layer k around the left-right axis. Clockwise
// (seen from the right) carries the front column up: F -> U -> B -> D -> F.
// The back face is traversed mirrored, which accounts for the reversed
// strip on B.
func (b *buffer) vertical(k int, dir types.Direction) {
	strips := [4][]int{
		b.col(F, k),
		b.col(U, k),
		reversed(b.col(B, b.n-1-k)),
		b.col(D, k),
	}
	b.cycleDir(strips, dir)

	if k == b.n-1 {
		b.rotateFace(R, dir)
	}
	if k == 0 {
		b.rotateFace(L, -dir)
	}
}

// lateral rotates the depth-k slice around the front-back axis. Clockwise
// (seen from the front) carries the touching U row onto the R column:
// U -> R -> D -> L -> U, with orientation flips on the D and L strips.
func (b *buffer) lateral(k int, dir types.Direction) {
	strips := [4][]int{
		b.row(U, b.n-1-k),
		b.col(R, k),
		reversed(b.row(D, k)),
		reversed(b.col(L, b.n-1-k)),
	}
	b.cycleDir(strips, dir)

	if k == 0 {
		b.rotateFace(F, dir)
	}
	if k == b.n-1 {
		b.rotateFace(B, -dir)
	}
}
