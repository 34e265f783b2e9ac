// Package contour implements the layered contour index: it
// stores matches ("arrows") in layers keyed by the best chainable
// potential from a position to the target, supports value/parent
// queries with a hint-accelerated fast path, and supports online
// pruning.
//
// The mutex-guarded-struct-of-slices shape here is a single struct
// that owns all the mutable state, where every exported method takes
// the lock it needs.
package contour

import (
	"log"
	"sort"
	"sync"

	"github.com/ndaniels/astarpa/internal/geom"
	"github.com/ndaniels/astarpa/internal/seeds"
)

type placedArrow struct {
	arrow seeds.Arrow
	layer int
}

// Contour is the layered arrow index: matches are bucketed by the best
// chainable potential from their position to the target.
type Contour struct {
	mu sync.RWMutex

	// layerPoints[k] holds every arrow Start placed in layer k,
	// dominant or not -- kept around so that prune's local rebuild can
	// recompute a layer's dominant subset after a removal.
	layerPoints [][]geom.Pos

	// dominant[k] holds layerPoints[k]'s dominant subset, sorted by I
	// ascending (equivalently J descending).
	dominant [][]geom.Pos

	// arrowsAt indexes every arrow by its Start position, so prune can
	// find what to remove in O(1) instead of scanning every layer.
	arrowsAt map[geom.Pos][]placedArrow

	// debug, when set, re-derives every Score via a brute-force O(n)
	// scan and panics on disagreement.
	debug     bool
	allArrows []seeds.Arrow
}

// New creates an empty contour index. Use Build to populate it from a
// set of arrows.
func New() *Contour {
	return &Contour{
		arrowsAt: make(map[geom.Pos][]placedArrow),
	}
}

// SetDebug toggles the brute-force cross-check.
func (c *Contour) SetDebug(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debug = on
}

// Build consumes arrows in reverse Start order and assigns each to a
// layer.
func Build(arrows []seeds.Arrow) *Contour {
	c := New()
	sorted := append([]seeds.Arrow(nil), arrows...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i].Start, sorted[j].Start
		if a.I != b.I {
			return a.I > b.I
		}
		return a.J > b.J
	})

	for _, a := range sorted {
		k := c.scoreLocked(a.End)
		layer := k + a.Score
		c.place(a, layer)
	}
	return c
}

// place records arrow a in layer, growing the layer tables as needed
// and updating the dominant cache.
func (c *Contour) place(a seeds.Arrow, layer int) {
	for len(c.layerPoints) <= layer {
		c.layerPoints = append(c.layerPoints, nil)
		c.dominant = append(c.dominant, nil)
	}
	c.layerPoints[layer] = append(c.layerPoints[layer], a.Start)
	c.dominant[layer] = insertDominant(c.dominant[layer], a.Start)
	c.arrowsAt[a.Start] = append(c.arrowsAt[a.Start], placedArrow{arrow: a, layer: layer})
	c.allArrows = append(c.allArrows, a)
}

// insertDominant inserts p into a dominant set sorted by I ascending
// (J descending), dropping p if it is dominated and evicting any
// points p newly dominates.
func insertDominant(set []geom.Pos, p geom.Pos) []geom.Pos {
	idx := sort.Search(len(set), func(i int) bool { return set[i].I >= p.I })

	// A point to the right (I >= p.I) with J >= p.J dominates p: since
	// the set is J-descending as I increases, the first such point (at
	// idx) has the largest J among candidates with I >= p.I.
	if idx < len(set) && set[idx].J >= p.J {
		return set
	}

	// Points to the left (I <= p.I) with J <= p.J are now dominated by
	// p; walk left evicting them.
	cut := idx
	for cut > 0 && set[cut-1].J <= p.J {
		cut--
	}

	// Points with the same I as p (J < p.J here) are dominated too.
	right := idx
	for right < len(set) && set[right].I == p.I {
		right++
	}

	out := make([]geom.Pos, 0, len(set)-(right-cut)+1)
	out = append(out, set[:cut]...)
	out = append(out, p)
	out = append(out, set[right:]...)
	return out
}

// existsGreaterEq reports whether layer k has a dominant point p with
// p.I >= q.I and p.J >= q.J.
func existsGreaterEq(layer []geom.Pos, q geom.Pos) bool {
	idx := sort.Search(len(layer), func(i int) bool { return layer[i].I >= q.I })
	return idx < len(layer) && layer[idx].J >= q.J
}

// scoreLocked is Score without acquiring the lock, for internal use
// while already holding it (e.g. from Build).
func (c *Contour) scoreLocked(p geom.Pos) int {
	for k := len(c.dominant) - 1; k >= 0; k-- {
		if existsGreaterEq(c.dominant[k], p) {
			return k
		}
	}
	return 0
}

// Score finds the largest k such that some arrow in layer k has
// start >= p. It scans from the top layer down; see DESIGN.md for why
// this replaces a binary search.
func (c *Contour) Score(p geom.Pos) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	k := c.scoreLocked(p)
	if c.debug {
		c.checkAgainstBruteForceLocked(p, k)
	}
	return k
}

// ScoreWithHint first checks the layers up to 8 away from hint and
// returns the highest of them holding a point >= p, falling back to the
// full scan only when none of them does. It returns the same value as
// Score whenever Score(p) <= hint+8, as when hint is an earlier result
// at p; a layer more than 8 above hint is not found.
func (c *Contour) ScoreWithHint(p geom.Pos, hint int) (int, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	best := -1
	if hint >= 0 {
		tried := map[int]bool{}
		for step := 0; step <= 8; step++ {
			for _, k := range [2]int{hint + step, hint - step} {
				if k < 0 || k >= len(c.dominant) || tried[k] {
					continue
				}
				tried[k] = true
				if existsGreaterEq(c.dominant[k], p) && k > best {
					best = k
				}
			}
		}
	}
	if best == -1 {
		best = c.scoreLocked(p)
	}
	if c.debug {
		c.checkAgainstBruteForceLocked(p, best)
	}
	return best, best
}

// Parent is Score plus the witnessing arrow's start position.
func (c *Contour) Parent(p geom.Pos) (int, geom.Pos, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for k := len(c.dominant) - 1; k >= 0; k-- {
		if q, ok := witness(c.dominant[k], p); ok {
			return k, q, true
		}
	}
	return 0, geom.Pos{}, false
}

// ParentWithHint is ScoreWithHint plus the witnessing arrow's start.
func (c *Contour) ParentWithHint(p geom.Pos, hint int) (int, geom.Pos, int, bool) {
	k, newHint := c.ScoreWithHint(p, hint)
	c.mu.RLock()
	defer c.mu.RUnlock()
	if k >= 0 && k < len(c.dominant) {
		if q, ok := witness(c.dominant[k], p); ok {
			return k, q, newHint, true
		}
	}
	return k, geom.Pos{}, newHint, false
}

func witness(layer []geom.Pos, q geom.Pos) (geom.Pos, bool) {
	idx := sort.Search(len(layer), func(i int) bool { return layer[i].I >= q.I })
	if idx < len(layer) && layer[idx].J >= q.J {
		return layer[idx], true
	}
	return geom.Pos{}, false
}

// NumLayers reports the number of populated layers, for diagnostics.
func (c *Contour) NumLayers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.dominant)
}

// checkAgainstBruteForceLocked panics if the cheap query disagrees with
// an O(n) brute-force recomputation. Caller must hold at least a read
// lock.
func (c *Contour) checkAgainstBruteForceLocked(p geom.Pos, got int) {
	want := bruteForceScore(c.allArrows, p)
	if want != got {
		log.Panicf("astarpa/contour: Score(%s) = %d, brute force says %d", p, got, want)
	}
}

func bruteForceScore(arrows []seeds.Arrow, p geom.Pos) int {
	// Recompute layers from scratch the slow way: repeatedly pick the
	// best achievable chain value by trying every arrow whose Start is
	// reachable from p, recursing through its End. Memoized on Start
	// position to stay polynomial.
	memo := map[geom.Pos]int{}
	var valueAt func(q geom.Pos) int
	valueAt = func(q geom.Pos) int {
		if v, ok := memo[q]; ok {
			return v
		}
		best := 0
		for _, a := range arrows {
			if q.LessEq(a.Start) {
				v := valueAt(a.End) + a.Score
				if v > best {
					best = v
				}
			}
		}
		memo[q] = best
		return best
	}
	return valueAt(p)
}
