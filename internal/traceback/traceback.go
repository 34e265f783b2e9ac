// Package traceback reconstructs a CIGAR-shaped alignment from either
// engine, by walking backward from the target and, at each step,
// picking the predecessor whose cost plus edge weight equals the
// current cost. Both Core A (a sparse
// position->cost map) and Core B (a dense per-row cost function) reduce
// to the same CostAt(pos) (int, bool) interface.
package traceback

import (
	"log"

	"github.com/ndaniels/astarpa/internal/geom"
)

// OpKind is the kind of a single alignment run.
type OpKind int

const (
	OpMatch OpKind = iota
	OpSub
	OpIns
	OpDel
)

// Op is one run-length-encoded step.
type Op struct {
	Kind OpKind
	Len  int
}

// CostAt reports the best known cost g(p), if known.
type CostAt func(p geom.Pos) (int, bool)

// Walk reconstructs the run-length op list from origin to target, given
// a and b and a cost oracle over already-settled positions. It panics
// as an internal invariant violation if no valid predecessor is found
// at some step, or if target's cost was never recorded.
func Walk(a, b []byte, target geom.Pos, cost CostAt) []Op {
	cur := target
	curG, ok := cost(cur)
	if !ok {
		log.Panicf("astarpa/traceback: no recorded cost at target %s", cur)
	}

	var steps []OpKind
	for cur.I != 0 || cur.J != 0 {
		i, j := cur.I, cur.J

		if i > 0 && j > 0 {
			pred := cur.Add(-1, -1)
			edge := 1
			kind := OpSub
			if a[i-1] == b[j-1] {
				edge = 0
				kind = OpMatch
			}
			if pg, ok := cost(pred); ok && pg+edge == curG {
				steps = append(steps, kind)
				cur, curG = pred, pg
				continue
			}
		}
		if j > 0 {
			pred := cur.Add(0, -1)
			if pg, ok := cost(pred); ok && pg+1 == curG {
				steps = append(steps, OpIns)
				cur, curG = pred, pg
				continue
			}
		}
		if i > 0 {
			pred := cur.Add(-1, 0)
			if pg, ok := cost(pred); ok && pg+1 == curG {
				steps = append(steps, OpDel)
				cur, curG = pred, pg
				continue
			}
		}
		log.Panicf("astarpa/traceback: no valid predecessor at %s (g=%d)", cur, curG)
	}

	return runLengthEncode(steps)
}

func runLengthEncode(steps []OpKind) []Op {
	var ops []Op
	for k := len(steps) - 1; k >= 0; k-- {
		kind := steps[k]
		if n := len(ops); n > 0 && ops[n-1].Kind == kind {
			ops[n-1].Len++
			continue
		}
		ops = append(ops, Op{Kind: kind, Len: 1})
	}
	return ops
}
