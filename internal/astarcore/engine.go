package astarcore

import (
	"log"

	"github.com/ndaniels/astarpa/internal/geom"
	"github.com/ndaniels/astarpa/internal/pq"
	"github.com/ndaniels/astarpa/internal/traceback"
)

// Op and its kinds are the package traceback's shapes, re-exported so
// callers of Search.Run don't need to import traceback themselves.
type OpKind = traceback.OpKind
type Op = traceback.Op

const (
	OpMatch = traceback.OpMatch
	OpSub   = traceback.OpSub
	OpIns   = traceback.OpIns
	OpDel   = traceback.OpDel
)

// Visualizer receives expand/explore/new-layer callbacks during the
// search; a no-op implementation is the default, a cheap interface
// with a null implementation.
type Visualizer interface {
	Expand(p geom.Pos, g, f int)
	Explore(p geom.Pos, g, f int)
	NewLayer(f int)
}

type nullVisualizer struct{}

func (nullVisualizer) Expand(geom.Pos, int, int)  {}
func (nullVisualizer) Explore(geom.Pos, int, int) {}
func (nullVisualizer) NewLayer(int)               {}

// Stats accumulates the counters reported in the output statistics
// record (the timing fields are filled in by the caller, which already
// owns the wall-clock boundaries of precompute/search).
type Stats struct {
	Expanded  int
	Explored  int
	Extended  int
	Reordered int
	PQShifts  int
	NumPruned int
}

type state struct {
	g    int
	hint int
}

// Search runs Core A's expand loop over sequences a, b. heur supplies
// both the remaining-cost estimate and the pruning/boundary hooks, so
// none, gap, sh, csh and gcsh all drive the same loop through one
// capability set.
type Search struct {
	a, b   []byte
	heur   Heuristic
	queue  *pq.Queue
	states map[geom.Pos]*state
	target geom.Pos
	vis    Visualizer
	stats  Stats
}

// New builds a Search.
func New(a, b []byte, heur Heuristic, vis Visualizer) *Search {
	if vis == nil {
		vis = nullVisualizer{}
	}
	return &Search{
		a: a, b: b,
		heur:   heur,
		queue:  pq.New(),
		states: map[geom.Pos]*state{},
		target: geom.Pos{I: len(a), J: len(b)},
		vis:    vis,
	}
}

// gAt reports the best known cost at p, if any (including positions
// threaded through by greedy extension, which are recorded in states
// without being pushed to the queue).
func (s *Search) gAt(p geom.Pos) (int, bool) {
	st, ok := s.states[p]
	if !ok {
		return 0, false
	}
	return st.g, true
}

// Run executes the expand loop to completion and returns the edit cost
// and traceback ops.
func (s *Search) Run() (cost int, ops []Op, stats Stats) {
	origin := geom.Pos{I: 0, J: 0}
	h0, hint0 := s.heur.ValueWithHint(origin, -1)
	s.states[origin] = &state{g: 0, hint: hint0}
	s.queue.Push(h0, origin, 0)
	s.vis.NewLayer(h0)

	lastF := h0
	for {
		f, p, g, ok := s.queue.Pop()
		if !ok {
			log.Panicf("astarpa/astarcore: priority queue empty before reaching target %s", s.target)
		}
		if f > lastF {
			lastF = f
			s.vis.NewLayer(f)
		}

		st, known := s.states[p]
		if known && g > st.g {
			continue // stale duplicate
		}

		hint := -1
		if known {
			hint = st.hint
		}
		h, newHint := s.heur.ValueWithHint(p, hint)
		if known {
			st.hint = newHint
		}
		if g+h > f {
			// A pruning shift reordered this entry; push it back with
			// its corrected f and keep going.
			s.stats.Reordered++
			s.queue.Push(g+h, p, g)
			continue
		}

		s.stats.Expanded++
		s.vis.Expand(p, g, f)

		if p == s.target {
			cost = g
			break
		}

		if s.heur.IsSeedBoundary(p.I) {
			shift, _ := s.heur.Prune(p, hint)
			if shift > 0 {
				s.stats.PQShifts++
				s.stats.NumPruned++
				s.queue.Shift(shift, f)
			}
		}

		s.expandFrom(p, g)
	}

	stats = s.stats
	ops = traceback.Walk(s.a, s.b, s.target, s.gAt)
	return cost, ops, stats
}

// expandFrom generates every outgoing edge from p,
// including a greedy diagonal-match shortcut.
func (s *Search) expandFrom(p geom.Pos, g int) {
	i, j := p.I, p.J

	if i < len(s.a) && j < len(s.b) {
		cost := 1
		if s.a[i] == s.b[j] {
			cost = 0
		}
		_, hops := s.greedyExtend(p, g, cost)
		s.stats.Explored++
		s.stats.Extended += hops
	}
	if j < len(s.b) { // insertion: consume a B residue
		s.relax(p.Add(0, 1), g+1)
		s.stats.Explored++
	}
	if i < len(s.a) { // deletion: consume an A residue
		s.relax(p.Add(1, 0), g+1)
		s.stats.Explored++
	}
}

// greedyExtend advances diagonally from p+(1,1) while characters keep
// matching, stopping before a seed boundary, a mismatch, or the
// target. Every position it threads through is recorded in states (so
// traceback can find it) without being pushed to the queue.
func (s *Search) greedyExtend(p geom.Pos, g, firstEdgeCost int) (geom.Pos, int) {
	cur := p.Add(1, 1)
	if firstEdgeCost != 0 {
		s.relax(cur, g+firstEdgeCost)
		return cur, 0
	}

	hops := 0
	for {
		if cur == s.target || s.heur.IsSeedBoundary(cur.I) ||
			cur.I >= len(s.a) || cur.J >= len(s.b) || s.a[cur.I] != s.b[cur.J] {
			s.relax(cur, g)
			return cur, hops
		}
		if st, ok := s.states[cur]; !ok {
			s.states[cur] = &state{g: g, hint: -1}
		} else if g < st.g {
			st.g = g
		}
		cur = cur.Add(1, 1)
		hops++
	}
}

// relax records a candidate cost at q if it improves on the stored one.
func (s *Search) relax(q geom.Pos, g int) {
	if st, ok := s.states[q]; ok {
		if g >= st.g {
			return
		}
		st.g = g
		h, hint := s.heur.ValueWithHint(q, st.hint)
		st.hint = hint
		s.queue.Push(g+h, q, g)
		return
	}
	h, hint := s.heur.ValueWithHint(q, -1)
	s.states[q] = &state{g: g, hint: hint}
	s.queue.Push(g+h, q, g)
}
