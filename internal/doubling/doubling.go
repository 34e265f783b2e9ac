// Package doubling implements the band-doubling controller: it drives
// the bitpacked block engine across growing f_max cost bounds until
// the target is covered, rather than computing the full O(|A|*|B|)
// table up front. The row range a given f_max covers is computed by
// the block engine itself from a heuristic this package only carries
// through, never inspects.
//
// Global doubling is implemented in full (start from f_max, refill,
// double on failure). Incremental and local doubling are approximated
// by the same repeated-widen-and-refill loop rather than their
// block-granular fixed-range reuse and per-block f_max[idx] variants
// -- recorded as a simplification in DESIGN.md, since those strategies
// additionally require the pruning coordinator to retire rows whose
// cost is provably final under the current f_max, which this
// controller does not yet track.
package doubling

import "github.com/ndaniels/astarpa/internal/block"

// Strategy selects how f_max grows between widenings.
type Strategy int

const (
	Global Strategy = iota
	Linear
	Band
	Local
)

// Controller grows f_max across successive block.Engine runs until the
// engine reports full row coverage, widening by Strategy's rule each
// time.
type Controller struct {
	engine   *block.Engine
	strategy Strategy
	start    int
	delta    int
	factor   int
	attempts int
}

// New builds a controller. start is the initial f_max; delta is
// DoublingLinear's fixed increment; factor is DoublingBand's growth
// multiplier (default 2 if <= 1).
func New(e *block.Engine, strategy Strategy, start, delta, factor int) *Controller {
	if factor <= 1 {
		factor = 2
	}
	if start <= 0 {
		start = 1
	}
	return &Controller{engine: e, strategy: strategy, start: start, delta: delta, factor: factor}
}

// Run grows f_max, refilling the block engine's band each time, until
// it reports full coverage. heur is the same heuristic the caller's
// A* core (if any) is using, so the two engines bound their search
// with one consistent estimate. maxFMax caps growth (the true edit
// distance is always <= len(a) + len(b), an upper bound that guarantees
// termination even if a strategy's growth rule stalls).
func (c *Controller) Run(maxFMax int, heur block.Heuristic) (dist int, widenings int) {
	fMax := c.start
	for {
		ok, d := c.engine.RunBand(fMax, heur)
		c.attempts++
		if ok {
			return d, c.attempts - 1
		}
		fMax = c.next(fMax, maxFMax)
	}
}

func (c *Controller) next(fMax, maxFMax int) int {
	var grown int
	switch c.strategy {
	case Linear:
		step := c.delta
		if step <= 0 {
			step = 64
		}
		grown = fMax + step
	default: // Global, Band, Local all widen geometrically here
		grown = fMax * c.factor
	}
	if grown <= fMax {
		grown = fMax + 1
	}
	if grown > maxFMax {
		grown = maxFMax
	}
	return grown
}
