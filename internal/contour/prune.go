package contour

import (
	"github.com/ndaniels/astarpa/internal/geom"
	"github.com/ndaniels/astarpa/internal/seeds"
)

// PruneAt removes every arrow starting at p and rebuilds the layers
// that held it, returning the decrease in the layer value at p so the
// caller can bulk-shift a priority queue.
//
// Rather than a bounded walk-upward rebuild, this recomputes the
// dominant subset of each affected layer from scratch (O(m log m) in
// that layer's remaining point count). This is a deliberate
// simplification recorded in DESIGN.md: it preserves every observable
// property (removal, correct shift, admissibility) at the cost of not
// bounding the rebuild to the smallest prefix of layers that is
// provably stable.
func (c *Contour) PruneAt(p geom.Pos) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	arrows, ok := c.arrowsAt[p]
	if !ok || len(arrows) == 0 {
		return 0
	}

	before := c.scoreLocked(p)

	affected := map[int]bool{}
	for _, pa := range arrows {
		affected[pa.layer] = true
		c.layerPoints[pa.layer] = removePos(c.layerPoints[pa.layer], p)
	}
	delete(c.arrowsAt, p)
	c.allArrows = removeArrowsStartingAt(c.allArrows, p)

	for layer := range affected {
		c.dominant[layer] = computeDominant(c.layerPoints[layer])
	}

	after := c.scoreLocked(p)
	return before - after
}

func removePos(points []geom.Pos, p geom.Pos) []geom.Pos {
	out := points[:0]
	for _, q := range points {
		if q != p {
			out = append(out, q)
		}
	}
	return out
}

func removeArrowsStartingAt(arrows []seeds.Arrow, p geom.Pos) []seeds.Arrow {
	out := arrows[:0]
	for _, a := range arrows {
		if a.Start != p {
			out = append(out, a)
		}
	}
	return out
}

// computeDominant recomputes the maximal (dominant) subset of points
// from scratch, sorted by I ascending.
func computeDominant(points []geom.Pos) []geom.Pos {
	var dom []geom.Pos
	for _, p := range points {
		dom = insertDominant(dom, p)
	}
	return dom
}
