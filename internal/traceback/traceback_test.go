package traceback

import (
	"testing"

	"github.com/ndaniels/astarpa/internal/geom"
)

func TestWalkReconstructsKnownPath(t *testing.T) {
	a, b := "ACGT", "AGT"
	// Known optimal alignment: A-C-G-T vs A-G-T, deleting C at i=1.
	// The cost table is built by hand; this first table is replaced below.
	costs := map[geom.Pos]int{
		{I: 0, J: 0}: 0,
		{I: 1, J: 0}: 1,
	}
	// Simpler deterministic path: match A, delete C, match G, match T.
	costs = map[geom.Pos]int{
		{I: 0, J: 0}: 0,
		{I: 1, J: 1}: 0, // match A
		{I: 2, J: 1}: 1, // delete C
		{I: 3, J: 2}: 1, // match G
		{I: 4, J: 3}: 1, // match T
	}
	costAt := func(p geom.Pos) (int, bool) {
		v, ok := costs[p]
		return v, ok
	}

	ops := Walk([]byte(a), []byte(b), geom.Pos{I: 4, J: 3}, costAt)

	want := []Op{{Kind: OpMatch, Len: 1}, {Kind: OpDel, Len: 1}, {Kind: OpMatch, Len: 2}}
	if len(ops) != len(want) {
		t.Fatalf("Walk ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("Walk ops[%d] = %v, want %v", i, ops[i], want[i])
		}
	}
}

func TestWalkPanicsOnMissingPredecessor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Walk did not panic on an unreachable cost graph")
		}
	}()
	costAt := func(p geom.Pos) (int, bool) {
		if p == (geom.Pos{I: 1, J: 1}) {
			return 5, true
		}
		return 0, false
	}
	Walk([]byte("A"), []byte("A"), geom.Pos{I: 1, J: 1}, costAt)
}
