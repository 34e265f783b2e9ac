package block

import (
	"github.com/ndaniels/astarpa/internal/geom"
	"github.com/ndaniels/astarpa/internal/traceback"
)

// Traceback reconstructs the alignment from a completed trace-mode
// run, sharing the backward-walk logic with Core A via package
// traceback. It requires the engine to have been run with trace =
// true and the last RunBand call to have reached full row coverage.
func (e *Engine) Traceback(b []byte) []traceback.Op {
	target := geom.Pos{I: len(e.a), J: len(b)}
	costAt := func(p geom.Pos) (int, bool) {
		if p.I < 0 || p.I > len(e.a) {
			return 0, false
		}
		if p.J < 0 || p.J > e.profile.n {
			return 0, false
		}
		return e.RowCost(p.I, p.J), true
	}
	return traceback.Walk(e.a, b, target, costAt)
}
