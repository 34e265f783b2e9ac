package astarpa

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// PruningMode selects which end(s) of a seed trigger pruning on expand.
type PruningMode int

const (
	PruneOff PruningMode = iota
	PruneStart
	PruneEnd
	PruneBoth
)

func (m PruningMode) String() string {
	switch m {
	case PruneOff:
		return "off"
	case PruneStart:
		return "start"
	case PruneEnd:
		return "end"
	case PruneBoth:
		return "both"
	}
	return "unknown"
}

func ParsePruningMode(s string) (PruningMode, error) {
	switch s {
	case "off":
		return PruneOff, nil
	case "start":
		return PruneStart, nil
	case "end":
		return PruneEnd, nil
	case "both":
		return PruneBoth, nil
	}
	return 0, fmt.Errorf("astarpa: unknown pruning mode %q", s)
}

// HeuristicKind selects the heuristic implementation.
type HeuristicKind int

const (
	HeuristicNone HeuristicKind = iota
	HeuristicGap
	HeuristicSH
	HeuristicCSH
	HeuristicGCSH
)

func (k HeuristicKind) String() string {
	switch k {
	case HeuristicNone:
		return "none"
	case HeuristicGap:
		return "gap"
	case HeuristicSH:
		return "sh"
	case HeuristicCSH:
		return "csh"
	case HeuristicGCSH:
		return "gcsh"
	}
	return "unknown"
}

func ParseHeuristicKind(s string) (HeuristicKind, error) {
	switch s {
	case "none":
		return HeuristicNone, nil
	case "gap":
		return HeuristicGap, nil
	case "sh":
		return HeuristicSH, nil
	case "csh":
		return HeuristicCSH, nil
	case "gcsh":
		return HeuristicGCSH, nil
	}
	return 0, fmt.Errorf("astarpa: unknown heuristic %q", s)
}

// DoublingKind selects the band-doubling controller strategy.
type DoublingKind int

const (
	DoublingNone DoublingKind = iota
	DoublingLinear
	DoublingBand
	DoublingLocal
)

func (k DoublingKind) String() string {
	switch k {
	case DoublingNone:
		return "none"
	case DoublingLinear:
		return "linear"
	case DoublingBand:
		return "band"
	case DoublingLocal:
		return "local"
	}
	return "unknown"
}

func ParseDoublingKind(s string) (DoublingKind, error) {
	switch s {
	case "none":
		return DoublingNone, nil
	case "linear":
		return DoublingLinear, nil
	case "band":
		return DoublingBand, nil
	case "local":
		return DoublingLocal, nil
	}
	return 0, fmt.Errorf("astarpa: unknown doubling kind %q", s)
}

// EngineKind selects which of the two search engines Align drives: the
// seed-heuristic A* search (Core A) or the bitpacked block-doubling DP
// (Core B). Both share the same seed/contour/prune precompute and the
// same traceback package; only the expand loop differs.
type EngineKind int

const (
	EngineAStar EngineKind = iota
	EngineBlock
)

func (k EngineKind) String() string {
	switch k {
	case EngineAStar:
		return "astar"
	case EngineBlock:
		return "block"
	}
	return "unknown"
}

func ParseEngineKind(s string) (EngineKind, error) {
	switch s {
	case "astar":
		return EngineAStar, nil
	case "block":
		return EngineBlock, nil
	}
	return 0, fmt.Errorf("astarpa: unknown engine %q", s)
}

// AlignConfig configures both cores: a flat struct of tunables with a
// package default and a CSV-backed load/save pair.
type AlignConfig struct {
	Engine        EngineKind
	K             int // seed length, 3..=31
	R             int // max match cost, 1..=2
	Pruning       PruningMode
	Heuristic     HeuristicKind
	Doubling      DoublingKind
	DoublingDelta int // increment for DoublingLinear
	BandStart     int // starting f_max for DoublingBand
	BandFactor    int // growth factor for DoublingBand, default 2
	BlockWidth    int // Core B column-block width, 64..=4096, default 256
	Trace         bool
	LookAheadL    int // local-pruning look-ahead, 0 disables
	PruneSkipN    int // prune 1 in every N candidates, 0/1 means always
}

// DefaultAlignConfig holds sane defaults for a general-purpose run.
var DefaultAlignConfig = AlignConfig{
	Engine:        EngineAStar,
	K:             15,
	R:             1,
	Pruning:       PruneBoth,
	Heuristic:     HeuristicGCSH,
	Doubling:      DoublingBand,
	DoublingDelta: 0,
	BandStart:     1,
	BandFactor:    2,
	BlockWidth:    256,
	Trace:         true,
	LookAheadL:    0,
	PruneSkipN:    1,
}

// Validate checks for contradictory option combinations. Input errors
// (bad symbols) are checked separately, at sequence-load time.
func (c AlignConfig) Validate() error {
	if c.K < 3 || c.K > 31 {
		return inputError(ErrBadSeedLength, "k=%d", c.K)
	}
	if c.R != 1 && c.R != 2 {
		return inputError(ErrBadMatchCost, "r=%d", c.R)
	}
	if c.BlockWidth < 64 || c.BlockWidth > 4096 {
		return configError("block_width=%d must be in 64..=4096", c.BlockWidth)
	}
	if c.Doubling == DoublingLocal && c.Pruning == PruneOff {
		return configError("local doubling requires pruning to be enabled")
	}
	if (c.Heuristic == HeuristicNone || c.Heuristic == HeuristicGap) && c.Pruning != PruneOff {
		return configError("heuristic=%s has no matches to prune; disable pruning", c.Heuristic)
	}
	if c.PruneSkipN < 0 {
		return configError("prune_skip_n=%d must be >= 0", c.PruneSkipN)
	}
	return nil
}

// Write persists a config in a ':'-delimited, '#'-commented CSV form,
// one field per line.
func (c AlignConfig) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = ':'
	rows := [][]string{
		{"Engine", c.Engine.String()},
		{"K", strconv.Itoa(c.K)},
		{"R", strconv.Itoa(c.R)},
		{"Pruning", c.Pruning.String()},
		{"Heuristic", c.Heuristic.String()},
		{"Doubling", c.Doubling.String()},
		{"DoublingDelta", strconv.Itoa(c.DoublingDelta)},
		{"BandStart", strconv.Itoa(c.BandStart)},
		{"BandFactor", strconv.Itoa(c.BandFactor)},
		{"BlockWidth", strconv.Itoa(c.BlockWidth)},
		{"Trace", strconv.FormatBool(c.Trace)},
		{"LookAheadL", strconv.Itoa(c.LookAheadL)},
		{"PruneSkipN", strconv.Itoa(c.PruneSkipN)},
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadAlignConfig reads the CSV form written by AlignConfig.Write: it
// starts from the default and overrides only the fields present.
func LoadAlignConfig(r io.Reader) (conf AlignConfig, err error) {
	conf = DefaultAlignConfig

	cr := csv.NewReader(r)
	cr.Comma = ':'
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	lines, err := cr.ReadAll()
	if err != nil {
		return conf, err
	}

	atoi := func(s string) (int, error) {
		n, err := strconv.ParseInt(s, 10, 32)
		return int(n), err
	}

	for _, line := range lines {
		key, val := line[0], line[1]
		var perr error
		switch key {
		case "Engine":
			conf.Engine, perr = ParseEngineKind(val)
		case "K":
			conf.K, perr = atoi(val)
		case "R":
			conf.R, perr = atoi(val)
		case "Pruning":
			conf.Pruning, perr = ParsePruningMode(val)
		case "Heuristic":
			conf.Heuristic, perr = ParseHeuristicKind(val)
		case "Doubling":
			conf.Doubling, perr = ParseDoublingKind(val)
		case "DoublingDelta":
			conf.DoublingDelta, perr = atoi(val)
		case "BandStart":
			conf.BandStart, perr = atoi(val)
		case "BandFactor":
			conf.BandFactor, perr = atoi(val)
		case "BlockWidth":
			conf.BlockWidth, perr = atoi(val)
		case "Trace":
			conf.Trace, perr = strconv.ParseBool(val)
		case "LookAheadL":
			conf.LookAheadL, perr = atoi(val)
		case "PruneSkipN":
			conf.PruneSkipN, perr = atoi(val)
		default:
			perr = fmt.Errorf("unknown config key %q", key)
		}
		if perr != nil {
			return conf, fmt.Errorf("astarpa: loading config key %q: %w", key, perr)
		}
	}
	return conf, nil
}
