package block

import "github.com/ndaniels/astarpa/internal/geom"

// Heuristic is the one capability the block engine needs from a
// heuristic: a remaining-cost estimate at a position. It is satisfied
// structurally by every heuristic type in package astarcore, so
// building one heuristic in the caller and handing it to both Core A
// and Core B is enough to let the same estimate bound both an A*
// search and a DP band.
type Heuristic interface {
	Value(p geom.Pos) int
}

// ZeroHeuristic estimates nothing. Combined with the admissible lower
// bound g(i,j) >= |i-j| that every unit-cost edit distance satisfies,
// it still yields a genuine (if loose) band: RunBand's row bound never
// collapses to "everything" just because the heuristic has no
// estimate to contribute.
type ZeroHeuristic struct{}

func (ZeroHeuristic) Value(geom.Pos) int { return 0 }

// Engine computes unit-cost edit distance column by column using the
// bitpacked word update in myers.go, organized into column blocks of
// blockWidth columns each. A pass over the whole of a is bounded by an
// f_max: the pass's row range only grows as far as the heuristic (plus
// the |i-j| lower bound on g) says it must to stay under f_max, so a
// tight f_max does less work than a loose one.
//
// In trace mode, the engine keeps one boundary (pv, mv) snapshot per
// block rather than one per column -- a sparse front. columnState
// reconstructs an interior column on demand by replaying forward from
// the block's boundary snapshot.
type Engine struct {
	profile    *Profile
	a          []byte
	trace      bool
	blockWidth int

	edges []blockEdge
	cache *interiorCache
}

// blockEdge is the word state after column col, covering rows [0, rows).
type blockEdge struct {
	col    int
	rows   int
	pv, mv []uint64
}

type interiorCache struct {
	col    int
	rows   int
	pv, mv []uint64
}

// NewEngine builds an engine over a (query) and b (already profiled),
// tiling a into blocks of blockWidth columns. blockWidth <= 0 means
// "one block covering all of a".
func NewEngine(a []byte, profile *Profile, trace bool, blockWidth int) *Engine {
	if blockWidth <= 0 || blockWidth > len(a) {
		blockWidth = len(a)
	}
	if blockWidth <= 0 {
		blockWidth = 1
	}
	return &Engine{profile: profile, a: a, trace: trace, blockWidth: blockWidth}
}

// Run computes the edit distance between a and the engine's profiled
// sequence b over the full row range, bypassing band doubling.
func (e *Engine) Run() int {
	_, dist := e.RunBand(len(e.a)+e.profile.n, ZeroHeuristic{})
	return dist
}

// RunBand computes D[len(a)][j_hi] under the band f_max excludes: for
// each block, anchored at its rightmost column i, a row j is only
// covered when |i-j| + heur.Value(i, j) <= fMax -- |i-j| is an
// admissible lower bound on g(i, j) since closing a length gap of
// |i-j| takes at least that many indels. Each block's bound is
// evaluated at its rightmost column, and the largest of them is used as
// one row range for every column of the pass, so the word vectors
// driving the DP keep one size during a pass. ok reports whether the resulting row range already reaches the
// bottom row; if not, the caller must widen fMax and retry.
func (e *Engine) RunBand(fMax int, heur Heuristic) (ok bool, dist int) {
	n := len(e.a)
	target := e.profile.n

	rows := e.blockBound(fMax, heur)
	wordLimit := wordsFor(rows)

	pv := make([]uint64, wordLimit)
	mv := make([]uint64, wordLimit)
	for w := range pv {
		pv[w] = ^uint64(0)
	}

	e.cache = nil
	if e.trace {
		e.edges = make([]blockEdge, 0, n/e.blockWidth+2)
		e.edges = append(e.edges, blockEdge{col: 0, rows: rows, pv: snapshot(pv), mv: snapshot(mv)})
	}

	for i := 0; i < n; {
		i1 := i + e.blockWidth
		if i1 > n {
			i1 = n
		}
		for ; i < i1; i++ {
			advanceColumn(e.a[i], e.profile, pv, mv, rows)
		}
		if e.trace {
			e.edges = append(e.edges, blockEdge{col: i1, rows: rows, pv: snapshot(pv), mv: snapshot(mv)})
		}
	}

	dist = colCost(n, pv, mv, rows)
	ok = rows >= target
	return ok, dist
}

// blockBound returns the pass-wide row bound implied by fMax: the
// largest per-block bound over every block, each evaluated at its
// rightmost column (j_lo is fixed at 0 rather than solved per block;
// see DESIGN.md).
func (e *Engine) blockBound(fMax int, heur Heuristic) int {
	n := len(e.a)
	target := e.profile.n
	best := 0
	for i := 0; i < n; i += e.blockWidth {
		i1 := i + e.blockWidth
		if i1 > n {
			i1 = n
		}
		if j := rowBoundAt(i1-1, target, fMax, heur); j > best {
			best = j
		}
	}
	if n == 0 {
		best = rowBoundAt(0, target, fMax, heur)
	}
	return roundUpWord(best, target)
}

// rowBoundAt returns the smallest j such that row j already violates
// the band at column i, i.e. the exclusive row bound for column i.
func rowBoundAt(i, target, fMax int, heur Heuristic) int {
	j := 0
	for ; j < target; j++ {
		if absDiff(i, j)+heur.Value(geom.Pos{I: i, J: j}) > fMax {
			break
		}
	}
	return j
}

func roundUpWord(rows, target int) int {
	if rows > target {
		rows = target
	}
	if rem := rows % WordBits; rem != 0 {
		rows += WordBits - rem
	}
	if rows > target {
		rows = target
	}
	return rows
}

func absDiff(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}

func wordsFor(rows int) int {
	return (rows + WordBits - 1) / WordBits
}

// advanceColumn runs one column of the Myers update across every word
// in pv, mv (rows covered, not word count, since rows may leave a
// partial final word whose unused high bits are simply never read).
func advanceColumn(base byte, profile *Profile, pv, mv []uint64, rows int) {
	wordLimit := wordsFor(rows)
	hin := 1
	for w := 0; w < wordLimit; w++ {
		eq := profile.Eq(base, w)
		pvNew, mvNew, hout := stepWord(eq, pv[w], mv[w], hin)
		pv[w], mv[w] = pvNew, mvNew
		hin = hout
	}
}

func snapshot(w []uint64) []uint64 {
	out := make([]uint64, len(w))
	copy(out, w)
	return out
}

// colCost returns D[i][rows] given the (pv, mv) state after column i
// covering rows [0, rows).
func colCost(i int, pv, mv []uint64, rows int) int {
	cost := i
	row := 0
	w := 0
	for ; row+WordBits <= rows; w++ {
		cost += rowSum(pv[w], mv[w], WordBits)
		row += WordBits
	}
	if rem := rows - row; rem > 0 {
		cost += rowSum(pv[w], mv[w], uint(rem))
	}
	return cost
}

// RowCost returns D[i][j] (the absolute cost at column i, row j),
// reconstructed from the most recent RunBand's boundary snapshots. It
// requires trace mode and i within [0, len(a)], j within [0, profile.n].
func (e *Engine) RowCost(i, j int) int {
	pv, mv, _ := e.columnState(i)
	return colCost(i, pv, mv, j)
}

// columnState reconstructs the (pv, mv) word state after column i: a
// sparse-front lookup. If i lands exactly on a stored block boundary
// it is returned directly; otherwise the owning block's boundary
// snapshot is replayed forward to i. A single-slot cache makes repeated
// nearby lookups within the same block cheap, which is the access
// pattern traceback.Walk's backward walk produces.
func (e *Engine) columnState(i int) (pv, mv []uint64, rows int) {
	k := 0
	for k+1 < len(e.edges) && e.edges[k+1].col <= i {
		k++
	}
	base := e.edges[k]
	if base.col == i {
		return base.pv, base.mv, base.rows
	}

	if e.cache != nil && e.cache.col <= i && e.cache.col >= base.col {
		pv, mv, rows = snapshot(e.cache.pv), snapshot(e.cache.mv), e.cache.rows
		for col := e.cache.col; col < i; col++ {
			advanceColumn(e.a[col], e.profile, pv, mv, rows)
		}
		e.cache = &interiorCache{col: i, rows: rows, pv: snapshot(pv), mv: snapshot(mv)}
		return pv, mv, rows
	}

	pv, mv, rows = snapshot(base.pv), snapshot(base.mv), base.rows
	for col := base.col; col < i; col++ {
		advanceColumn(e.a[col], e.profile, pv, mv, rows)
	}
	e.cache = &interiorCache{col: i, rows: rows, pv: snapshot(pv), mv: snapshot(mv)}
	return pv, mv, rows
}
