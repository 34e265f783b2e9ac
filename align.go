package astarpa

import (
	"time"

	"github.com/ndaniels/astarpa/internal/astarcore"
	"github.com/ndaniels/astarpa/internal/block"
	"github.com/ndaniels/astarpa/internal/contour"
	"github.com/ndaniels/astarpa/internal/doubling"
	"github.com/ndaniels/astarpa/internal/geom"
	"github.com/ndaniels/astarpa/internal/prune"
	"github.com/ndaniels/astarpa/internal/seeds"
	"github.com/ndaniels/astarpa/visualizer"
)

// Stats is returned alongside the cost and CIGAR: precompute/search
// timing plus the search engine's own counters, a small accumulator the
// caller can log or discard.
type Stats struct {
	NumSeeds   int
	NumMatches int
	NumArrows  int
	NumLayers  int

	Expanded  int
	Explored  int
	Extended  int
	Reordered int
	PQShifts  int
	NumPruned int
	Widenings int // Core B band-doubling retries; 0 for Core A

	PrecomputeTime time.Duration
	SearchTime     time.Duration
}

// Align computes the Levenshtein edit distance between a and b and an
// optimal CIGAR script realizing it, using the engine cfg.Engine
// selects. vis may be nil, in which case no visualizer callbacks fire.
func Align(a, b []byte, cfg AlignConfig, vis visualizer.Visualizer) (cost int, cigar CIGAR, stats Stats, err error) {
	if err := cfg.Validate(); err != nil {
		return 0, CIGAR{}, Stats{}, err
	}
	if err := validateSeq(a); err != nil {
		return 0, CIGAR{}, Stats{}, err
	}
	if err := validateSeq(b); err != nil {
		return 0, CIGAR{}, Stats{}, err
	}
	if vis == nil {
		vis = visualizer.Null{}
	}

	pre := time.Now()
	// none and gap never consult a match, so the seed/contour pipeline
	// that backs sh/csh/gcsh is skipped entirely for them.
	var ss []seeds.Seed
	var matches []seeds.Match
	needsSeeds := cfg.Heuristic != HeuristicNone && cfg.Heuristic != HeuristicGap
	if needsSeeds {
		ss = seeds.Tile(a, cfg.K, cfg.R)
		idx := seeds.Build(b, cfg.K, cfg.R)
		matches = seeds.Extract(a, b, ss, idx, cfg.R)
		matches = seeds.TransformFilter(matches, ss, len(a), len(b))
		if cfg.LookAheadL > 0 {
			matches = seeds.LookAheadFilter(matches, cfg.LookAheadL)
		}
	}
	arrows := seeds.Arrows(matches, ss)
	c := contour.Build(arrows)
	stats.NumSeeds = len(ss)
	stats.NumMatches = len(matches)
	stats.NumArrows = len(arrows)
	stats.NumLayers = c.NumLayers()
	stats.PrecomputeTime = time.Since(pre)

	// heur backs both cores: the same remaining-cost estimate that
	// guides Core A's expand loop is handed to Core B to bound its
	// band, per cfg.Heuristic's kind.
	var heur astarcore.Heuristic
	switch cfg.Heuristic {
	case HeuristicNone:
		heur = astarcore.NoneHeuristic{}
	case HeuristicGap:
		heur = astarcore.NewGapHeuristic(len(a), len(b))
	default: // sh, csh, gcsh all route through the contour-backed heuristic
		store := seeds.NewArrowStore(arrows)
		coord := prune.New(pruneMode(cfg.Pruning), max(cfg.PruneSkipN, 1), c, store)
		heur = astarcore.NewContourHeuristic(ss, c, coord, seedBoundary(ss))
	}

	run := time.Now()
	var rawOps []astarcore.Op
	switch cfg.Engine {
	case EngineBlock:
		cost, rawOps, stats.Widenings = runBlockEngine(a, b, cfg, heur)
	default:
		sr := astarcore.New(a, b, heur, visAdapter{vis})
		var coreStats astarcore.Stats
		cost, rawOps, coreStats = sr.Run()
		stats.Expanded = coreStats.Expanded
		stats.Explored = coreStats.Explored
		stats.Extended = coreStats.Extended
		stats.Reordered = coreStats.Reordered
		stats.PQShifts = coreStats.PQShifts
		stats.NumPruned = coreStats.NumPruned
	}
	stats.SearchTime = time.Since(run)

	for _, op := range rawOps {
		cigar.push(OpKind(op.Kind), op.Len)
	}
	vis.LastFrame(cigar.String())
	return cost, cigar, stats, nil
}

// runBlockEngine drives Core B: the bitpacked Myers DP tiled into
// cfg.BlockWidth-wide column blocks, under the band-doubling
// controller cfg.Doubling selects. heur is the same heuristic Core A
// would use, bounding each block's row range the way the contour
// bounds Core A's frontier.
func runBlockEngine(a, b []byte, cfg AlignConfig, heur astarcore.Heuristic) (cost int, ops []astarcore.Op, widenings int) {
	profile := block.NewProfile(b)
	// Align always returns a CIGAR, so traceback mode stays on even when
	// cfg.Trace reports the caller's preference for distance-only runs;
	// a distance-only entry point would skip eng.Traceback below instead.
	eng := block.NewEngine(a, profile, true, cfg.BlockWidth)

	if cfg.Doubling == DoublingNone {
		cost = eng.Run()
	} else {
		ctl := doubling.New(eng, doublingStrategy(cfg.Doubling), cfg.BandStart, cfg.DoublingDelta, cfg.BandFactor)
		cost, widenings = ctl.Run(len(a)+len(b), heur)
	}

	return cost, eng.Traceback(b), widenings
}

// seedBoundary collects the A-index positions Core A must treat as
// expand-time pruning triggers: every seed's start and end column.
func seedBoundary(ss []seeds.Seed) map[int]bool {
	boundary := make(map[int]bool, 2*len(ss))
	for _, s := range ss {
		boundary[s.Start] = true
		boundary[s.End] = true
	}
	return boundary
}

func pruneMode(m PruningMode) prune.Mode {
	switch m {
	case PruneStart:
		return prune.Start
	case PruneEnd:
		return prune.End
	case PruneBoth:
		return prune.Both
	}
	return prune.Off
}

func doublingStrategy(k DoublingKind) doubling.Strategy {
	switch k {
	case DoublingLinear:
		return doubling.Linear
	case DoublingBand:
		return doubling.Band
	case DoublingLocal:
		return doubling.Local
	}
	return doubling.Global
}

func validateSeq(seq []byte) error {
	for i, c := range seq {
		if seeds.BaseValue(c) < 0 {
			return BadSymbolError(c, i)
		}
	}
	return nil
}

// visAdapter narrows visualizer.Visualizer (which also carries
// LastFrame, fired once Align has a final CIGAR) down to the smaller
// interface astarcore.Search drives during its expand loop.
type visAdapter struct {
	v visualizer.Visualizer
}

func (a visAdapter) Expand(p geom.Pos, g, f int)  { a.v.Expand(p, g, f) }
func (a visAdapter) Explore(p geom.Pos, g, f int) { a.v.Explore(p, g, f) }
func (a visAdapter) NewLayer(f int)               { a.v.NewLayer(f) }
