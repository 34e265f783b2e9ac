package astarcore

import (
	"testing"

	"github.com/ndaniels/astarpa/internal/contour"
	"github.com/ndaniels/astarpa/internal/geom"
	"github.com/ndaniels/astarpa/internal/prune"
	"github.com/ndaniels/astarpa/internal/seeds"
)

// bruteLevenshtein is the textbook O(nm) DP, used only as a test oracle.
func bruteLevenshtein(a, b []byte) int {
	n, m := len(a), len(b)
	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		cur[0] = i
		for j := 1; j <= m; j++ {
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
	return prev[m]
}

func applyOps(ops []Op, a, b []byte) []byte {
	out := make([]byte, 0, len(b))
	ai, bi := 0, 0
	for _, op := range ops {
		switch op.Kind {
		case OpMatch:
			out = append(out, a[ai:ai+op.Len]...)
			ai += op.Len
			bi += op.Len
		case OpSub:
			out = append(out, b[bi:bi+op.Len]...)
			ai += op.Len
			bi += op.Len
		case OpDel:
			ai += op.Len
		case OpIns:
			out = append(out, b[bi:bi+op.Len]...)
			bi += op.Len
		}
	}
	return out
}

func opsCost(ops []Op) int {
	cost := 0
	for _, op := range ops {
		if op.Kind != OpMatch {
			cost += op.Len
		}
	}
	return cost
}

func runSearch(t *testing.T, a, b string, k, r int, mode prune.Mode) (int, []Op) {
	t.Helper()
	ab, bb := []byte(a), []byte(b)

	ss := seeds.Tile(ab, k, r)
	idx := seeds.Build(bb, k, r)
	matches := seeds.Extract(ab, bb, ss, idx, r)
	arrows := seeds.Arrows(matches, ss)

	boundary := map[int]bool{}
	for _, seed := range ss {
		boundary[seed.Start] = true
		boundary[seed.End] = true
	}

	c := contour.Build(arrows)
	store := seeds.NewArrowStore(arrows)
	coord := prune.New(mode, 1, c, store)
	heur := NewContourHeuristic(ss, c, coord, boundary)

	sr := New(ab, bb, heur, nil)
	cost, ops, _ := sr.Run()
	return cost, ops
}

func TestEngineMatchesBruteForceNoSeeds(t *testing.T) {
	a, b := "GATTACA", "GATCACA"
	// k bigger than either sequence: no seeds, h == 0 everywhere, degrades
	// to a plain shortest-path search.
	cost, ops := runSearch(t, a, b, 31, 1, prune.Off)

	want := bruteLevenshtein([]byte(a), []byte(b))
	if cost != want {
		t.Fatalf("cost = %d, want %d", cost, want)
	}
	if got := opsCost(ops); got != cost {
		t.Fatalf("ops cost = %d, want %d", got, cost)
	}
	if got := string(applyOps(ops, []byte(a), []byte(b))); got != b {
		t.Fatalf("applyOps(ops, a, b) = %q, want %q", got, b)
	}
}

func TestEngineMatchesBruteForceWithSeedsAndPruning(t *testing.T) {
	a := "ACGTACGTACGTACGTACGT"
	b := "ACGTACCTACGTACGAACGT"
	cost, ops := runSearch(t, a, b, 4, 2, prune.Both)

	want := bruteLevenshtein([]byte(a), []byte(b))
	if cost != want {
		t.Fatalf("cost = %d, want %d", cost, want)
	}
	if got := opsCost(ops); got != cost {
		t.Fatalf("ops cost = %d, want %d", got, cost)
	}
	if got := string(applyOps(ops, []byte(a), []byte(b))); got != b {
		t.Fatalf("applyOps(ops, a, b) = %q, want %q", got, b)
	}
}

func TestEngineIdenticalSequences(t *testing.T) {
	a := "ACGTACGTACGT"
	cost, ops := runSearch(t, a, a, 4, 1, prune.Both)
	if cost != 0 {
		t.Fatalf("distance(a, a) = %d, want 0", cost)
	}
	if len(ops) != 1 || ops[0].Kind != OpMatch || ops[0].Len != len(a) {
		t.Fatalf("ops = %v, want a single Match run of length %d", ops, len(a))
	}
}

func TestGapHeuristicMatchesBruteForce(t *testing.T) {
	a, b := "GATTACA", "GATCACA"
	ab, bb := []byte(a), []byte(b)
	heur := NewGapHeuristic(len(ab), len(bb))
	sr := New(ab, bb, heur, nil)
	cost, ops, _ := sr.Run()

	want := bruteLevenshtein(ab, bb)
	if cost != want {
		t.Fatalf("cost = %d, want %d", cost, want)
	}
	if got := opsCost(ops); got != cost {
		t.Fatalf("ops cost = %d, want %d", got, cost)
	}
	if got := string(applyOps(ops, ab, bb)); got != b {
		t.Fatalf("applyOps(ops, a, b) = %q, want %q", got, b)
	}
}

func TestNoneHeuristicMatchesBruteForce(t *testing.T) {
	a, b := "GATTACA", "GATCACA"
	ab, bb := []byte(a), []byte(b)
	sr := New(ab, bb, NoneHeuristic{}, nil)
	cost, ops, _ := sr.Run()

	want := bruteLevenshtein(ab, bb)
	if cost != want {
		t.Fatalf("cost = %d, want %d", cost, want)
	}
	if got := opsCost(ops); got != cost {
		t.Fatalf("ops cost = %d, want %d", got, cost)
	}
}

func TestGapHeuristicIsAdmissible(t *testing.T) {
	a, b := "GATTACAGATTACA", "GATCACAG"
	heur := NewGapHeuristic(len(a), len(b))
	want := bruteLevenshtein([]byte(a), []byte(b))
	if h := heur.Value(geom.Pos{I: 0, J: 0}); h > want {
		t.Fatalf("h(0,0) = %d must not exceed the true distance %d", h, want)
	}
}
