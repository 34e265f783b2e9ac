package astarpa

import (
	"testing"

	"github.com/ndaniels/astarpa/visualizer"
)

func bruteLevenshtein(a, b []byte) int {
	m, n := len(a), len(b)
	prev := make([]int, n+1)
	cur := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}
	for i := 1; i <= m; i++ {
		cur[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			best := del
			if ins < best {
				best = ins
			}
			if sub < best {
				best = sub
			}
			cur[j] = best
		}
		prev, cur = cur, prev
	}
	return prev[n]
}

func TestAlignAStarMatchesBruteForce(t *testing.T) {
	cases := []struct{ a, b string }{
		{"ACGTACGTACGT", "ACGTACCTACGT"},
		{"AAAACCCCGGGGTTTT", "AAACCCGGGTTT"},
		{"ACGT", "ACGT"},
		{"A", "T"},
	}
	cfg := DefaultAlignConfig
	cfg.K = 3
	for _, c := range cases {
		a, b := []byte(c.a), []byte(c.b)
		cost, cigar, _, err := Align(a, b, cfg, nil)
		if err != nil {
			t.Fatalf("Align(%q, %q) error: %v", c.a, c.b, err)
		}
		want := bruteLevenshtein(a, b)
		if cost != want {
			t.Fatalf("Align(%q, %q) cost = %d, want %d", c.a, c.b, cost, want)
		}
		if cigar.Cost() != want {
			t.Fatalf("cigar cost = %d, want %d", cigar.Cost(), want)
		}
		if got := string(cigar.Apply(a, b)); got != c.b {
			t.Fatalf("cigar.Apply(a, b) = %q, want %q", got, c.b)
		}
	}
}

func TestAlignBlockEngineMatchesBruteForce(t *testing.T) {
	a := []byte("ACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGT")
	b := []byte("ACGTACGTACGTACGTACCTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGT")

	cfg := DefaultAlignConfig
	cfg.Engine = EngineBlock
	cost, cigar, stats, err := Align(a, b, cfg, nil)
	if err != nil {
		t.Fatalf("Align error: %v", err)
	}
	want := bruteLevenshtein(a, b)
	if cost != want {
		t.Fatalf("cost = %d, want %d", cost, want)
	}
	if got := string(cigar.Apply(a, b)); got != string(b) {
		t.Fatalf("cigar.Apply(a, b) = %q, want %q", got, b)
	}
	if stats.SearchTime <= 0 {
		t.Fatalf("expected a nonzero search time")
	}
}

func TestAlignRejectsBadSymbol(t *testing.T) {
	_, _, _, err := Align([]byte("ACGN"), []byte("ACGT"), DefaultAlignConfig, nil)
	if err == nil {
		t.Fatal("expected an error for a non-ACGT symbol")
	}
}

func TestAlignRejectsBadConfig(t *testing.T) {
	cfg := DefaultAlignConfig
	cfg.K = 0
	_, _, _, err := Align([]byte("ACGT"), []byte("ACGT"), cfg, nil)
	if err == nil {
		t.Fatal("expected an error for an invalid k")
	}
}

func TestAlignDrivesVisualizer(t *testing.T) {
	rec := visualizer.NewRecorder()
	cfg := DefaultAlignConfig
	cfg.K = 3
	_, _, _, err := Align([]byte("ACGTACGT"), []byte("ACGTACGT"), cfg, rec)
	if err != nil {
		t.Fatalf("Align error: %v", err)
	}
	if len(rec.Events) == 0 {
		t.Fatal("expected at least one recorded event")
	}
	last := rec.Events[len(rec.Events)-1]
	if last.Kind != "last_frame" {
		t.Fatalf("last event kind = %q, want last_frame", last.Kind)
	}
}
