// Package geom holds the position type shared by every internal package
// of the aligner, so that seeds, contour, pq, astarcore, block, doubling
// and traceback can all speak the same coordinate system without each
// depending on the public astarpa package (which would create an import
// cycle, since astarpa orchestrates all of them).
package geom

import "fmt"

// Pos is a position in the edit graph: I indexes A (columns), J indexes
// B (rows). The target position is always (len(A), len(B)).
type Pos struct {
	I, J int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.I, p.J)
}

// LessEq is the product order used by the contour index to decide
// domination.
func (p Pos) LessEq(q Pos) bool {
	return p.I <= q.I && p.J <= q.J
}

// Before reports whether p strictly precedes q on both coordinates.
func (p Pos) Before(q Pos) bool {
	return p.I < q.I && p.J < q.J
}

func (p Pos) Add(di, dj int) Pos {
	return Pos{I: p.I + di, J: p.J + dj}
}

func (p Pos) Diag() int {
	return p.I - p.J
}

func (p Pos) FurthestReaching() int {
	return p.I + p.J
}
