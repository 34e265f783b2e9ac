package astarcore

import (
	"github.com/ndaniels/astarpa/internal/contour"
	"github.com/ndaniels/astarpa/internal/geom"
	"github.com/ndaniels/astarpa/internal/prune"
	"github.com/ndaniels/astarpa/internal/seeds"
)

// Heuristic is the capability set Search drives an expand loop
// through: a remaining-cost estimate (with and without a layer hint to
// accelerate the lookup), a pruning hook fired on seed boundaries, and
// a predicate for which A-indices those boundaries are. none, gap,
// sh, csh and gcsh are all Heuristics built through this one
// interface, rather than Search special-casing which kind it was
// handed.
type Heuristic interface {
	Value(p geom.Pos) int
	ValueWithHint(p geom.Pos, hint int) (int, int)
	Prune(p geom.Pos, hint int) (shift int, newHint geom.Pos)
	IsSeedBoundary(i int) bool
}

// ContourHeuristic computes h(p) = (potential of every seed fully
// after p) - v(p), the layer-value definition the contour index
// supports, and backs Prune/IsSeedBoundary with the same seed/contour
// data: this is sh, csh and gcsh, which differ only in how seeds was
// built (chained or not) before reaching here.
type ContourHeuristic struct {
	seeds    []seeds.Seed
	c        *contour.Contour
	coord    *prune.Coordinator
	boundary map[int]bool
}

// NewContourHeuristic builds a heuristic over ss (tiled seeds,
// potentials already learned by seeds.Extract), c (built from ss's
// arrows), and the pruning coordinator and seed-boundary set that
// Search consults when it expands a boundary position.
func NewContourHeuristic(ss []seeds.Seed, c *contour.Contour, coord *prune.Coordinator, boundary map[int]bool) *ContourHeuristic {
	return &ContourHeuristic{seeds: ss, c: c, coord: coord, boundary: boundary}
}

func (h *ContourHeuristic) Value(p geom.Pos) int {
	return seeds.PotentialAfter(h.seeds, p.I) - h.c.Score(p)
}

// ValueWithHint returns h(p) and an updated hint, using the contour's
// hinted score lookup.
func (h *ContourHeuristic) ValueWithHint(p geom.Pos, hint int) (int, int) {
	v, newHint := h.c.ScoreWithHint(p, hint)
	return seeds.PotentialAfter(h.seeds, p.I) - v, newHint
}

func (h *ContourHeuristic) Prune(p geom.Pos, hint int) (int, geom.Pos) {
	return h.coord.Prune(p, hint)
}

func (h *ContourHeuristic) IsSeedBoundary(i int) bool {
	return h.boundary[i]
}

// AtOrigin is a convenience for the admissibility assertion: h(0,0)
// must never exceed the returned distance.
func (h *ContourHeuristic) AtOrigin() int {
	return h.Value(geom.Pos{I: 0, J: 0})
}

// GapHeuristic estimates the cost of closing the remaining length gap
// alone, ignoring matches entirely: h(p) = |(len(a)-p.I) -
// (len(b)-p.J)|, the number of indels any alignment of the two
// remaining suffixes must contain at minimum. It carries no seeds, so
// it never triggers pruning or treats any column as a boundary.
type GapHeuristic struct {
	lenA, lenB int
}

// NewGapHeuristic builds the match-free gap heuristic for sequences of
// length lenA, lenB.
func NewGapHeuristic(lenA, lenB int) *GapHeuristic {
	return &GapHeuristic{lenA: lenA, lenB: lenB}
}

func (h *GapHeuristic) Value(p geom.Pos) int {
	remA := h.lenA - p.I
	remB := h.lenB - p.J
	if remA > remB {
		return remA - remB
	}
	return remB - remA
}

func (h *GapHeuristic) ValueWithHint(p geom.Pos, hint int) (int, int) {
	return h.Value(p), hint
}

func (h *GapHeuristic) Prune(_ geom.Pos, hint int) (int, geom.Pos) {
	return 0, geom.Pos{}
}

func (h *GapHeuristic) IsSeedBoundary(int) bool { return false }

// NoneHeuristic always estimates zero, degrading Core A to an
// unguided shortest-path search and Core B to an unbanded full-table
// DP (bounded only by the |i-j| lower bound on g).
type NoneHeuristic struct{}

func (NoneHeuristic) Value(geom.Pos) int { return 0 }

func (NoneHeuristic) ValueWithHint(p geom.Pos, hint int) (int, int) { return 0, hint }

func (NoneHeuristic) Prune(geom.Pos, int) (int, geom.Pos) { return 0, geom.Pos{} }

func (NoneHeuristic) IsSeedBoundary(int) bool { return false }
