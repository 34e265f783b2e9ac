// Command astarpa-align aligns the first record of one FASTA file
// against the first record of another and prints the edit distance and
// CIGAR: a flat flag.FlagSet, an optional CPU/memory profile, and two
// positional input files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/ndaniels/astarpa"
	"github.com/ndaniels/astarpa/fasta"
	"github.com/ndaniels/astarpa/visualizer"
)

var (
	flagConfig     string
	flagK          int
	flagR          int
	flagPruning    string
	flagHeuristic  string
	flagDoubling   string
	flagEngine     string
	flagBlockWidth int
	flagLookAheadL int
	flagVerbose    bool
	flagTraceFile  string
	flagCpuProfile string
	flagMemProfile string
)

func init() {
	log.SetFlags(0)

	flag.StringVar(&flagConfig, "config", "",
		"Load alignment settings from this file instead of the built-in defaults.")
	flag.IntVar(&flagK, "k", astarpa.DefaultAlignConfig.K,
		"Seed length (3..=31).")
	flag.IntVar(&flagR, "r", astarpa.DefaultAlignConfig.R,
		"Maximum edit cost a seed match may carry (1 or 2).")
	flag.StringVar(&flagPruning, "pruning", "both",
		"Pruning mode: off, start, end, or both.")
	flag.StringVar(&flagHeuristic, "heuristic", "gcsh",
		"Heuristic: none, gap, sh, csh, or gcsh.")
	flag.StringVar(&flagDoubling, "doubling", "band",
		"Core B band-doubling strategy: none, linear, band, or local.")
	flag.StringVar(&flagEngine, "engine", "astar",
		"Search engine: astar (Core A) or block (Core B).")
	flag.IntVar(&flagBlockWidth, "block-width", astarpa.DefaultAlignConfig.BlockWidth,
		"Core B column-block width (64..=4096).")
	flag.IntVar(&flagLookAheadL, "lookahead", 0,
		"Local-pruning look-ahead window, 0 disables.")
	flag.BoolVar(&flagVerbose, "verbose", false,
		"Print progress to stderr.")
	flag.StringVar(&flagTraceFile, "trace", "",
		"When set, write a per-event visualizer trace to this file.")
	flag.StringVar(&flagCpuProfile, "cpuprofile", "",
		"When set, a CPU profile is written to the file specified.")
	flag.StringVar(&flagMemProfile, "memprofile", "",
		"When set, a memory profile is written to the file specified.")
}

func main() {
	flag.Usage = usage
	flag.Parse()
	astarpa.Verbose = flagVerbose

	if flag.NArg() != 2 {
		log.Println("exactly two FASTA files are required")
		flag.Usage()
	}

	if flagCpuProfile != "" {
		f, err := os.Create(flagCpuProfile)
		if err != nil {
			fatalf("%s\n", err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg, err := loadConfig()
	if err != nil {
		fatalf("%s\n", err)
	}

	recsA, err := fasta.ReadFile(flag.Arg(0))
	if err != nil {
		fatalf("reading %s: %s\n", flag.Arg(0), err)
	}
	recsB, err := fasta.ReadFile(flag.Arg(1))
	if err != nil {
		fatalf("reading %s: %s\n", flag.Arg(1), err)
	}
	if len(recsA) == 0 || len(recsB) == 0 {
		fatalf("both input files must contain at least one record\n")
	}

	var vis visualizer.Visualizer
	var rec *visualizer.Recorder
	if flagTraceFile != "" {
		rec = visualizer.NewRecorder()
		vis = rec
	}

	a, b := recsA[0], recsB[0]
	astarpa.Logf("aligning %s (%d bp) against %s (%d bp)\n", a.Name, len(a.Residues), b.Name, len(b.Residues))

	cost, cigar, stats, err := astarpa.Align(a.Residues, b.Residues, cfg, vis)
	if err != nil {
		fatalf("%s\n", err)
	}

	fmt.Printf("%s\t%s\t%d\t%s\n", a.Name, b.Name, cost, cigar)
	astarpa.Logf("expanded=%d explored=%d pruned=%d pq_shifts=%d widenings=%d precompute=%s search=%s\n",
		stats.Expanded, stats.Explored, stats.NumPruned, stats.PQShifts, stats.Widenings,
		stats.PrecomputeTime, stats.SearchTime)

	if rec != nil {
		if err := writeTrace(flagTraceFile, rec); err != nil {
			fatalf("writing trace: %s\n", err)
		}
	}

	if flagMemProfile != "" {
		f, err := os.Create(flagMemProfile)
		if err != nil {
			fatalf("%s\n", err)
		}
		defer f.Close()
		pprof.WriteHeapProfile(f)
	}
}

func loadConfig() (astarpa.AlignConfig, error) {
	if flagConfig == "" {
		return flagOverrides(astarpa.DefaultAlignConfig)
	}
	f, err := os.Open(flagConfig)
	if err != nil {
		return astarpa.AlignConfig{}, err
	}
	defer f.Close()
	cfg, err := astarpa.LoadAlignConfig(f)
	if err != nil {
		return astarpa.AlignConfig{}, err
	}
	return cfg, nil
}

// flagOverrides applies the individually-settable flags on top of the
// package defaults. A config loaded with -config is used as is.
func flagOverrides(cfg astarpa.AlignConfig) (astarpa.AlignConfig, error) {
	cfg.K = flagK
	cfg.R = flagR
	cfg.BlockWidth = flagBlockWidth
	cfg.LookAheadL = flagLookAheadL

	var err error
	if cfg.Pruning, err = astarpa.ParsePruningMode(flagPruning); err != nil {
		return cfg, err
	}
	if cfg.Heuristic, err = astarpa.ParseHeuristicKind(flagHeuristic); err != nil {
		return cfg, err
	}
	if cfg.Doubling, err = astarpa.ParseDoublingKind(flagDoubling); err != nil {
		return cfg, err
	}
	if cfg.Engine, err = astarpa.ParseEngineKind(flagEngine); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func writeTrace(path string, rec *visualizer.Recorder) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, ev := range rec.Events {
		fmt.Fprintf(f, "%s\t%s\t%d\t%d\n", ev.Kind, ev.Pos, ev.G, ev.F)
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] a.fasta b.fasta\n", os.Args[0])
	flag.PrintDefaults()
	os.Exit(1)
}

func fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
	os.Exit(1)
}
