package contour

import (
	"testing"

	"github.com/ndaniels/astarpa/internal/geom"
	"github.com/ndaniels/astarpa/internal/seeds"
)

func TestBuildAndScoreMonotoneChain(t *testing.T) {
	// Two chainable arrows: the first ends exactly where the second
	// starts, so scoring before the first arrow should see both scores
	// summed.
	arrows := []seeds.Arrow{
		{Start: geom.Pos{I: 0, J: 0}, End: geom.Pos{I: 4, J: 4}, Score: 1},
		{Start: geom.Pos{I: 4, J: 4}, End: geom.Pos{I: 8, J: 8}, Score: 1},
	}
	c := Build(arrows)

	if got := c.Score(geom.Pos{I: 0, J: 0}); got != 2 {
		t.Fatalf("Score(origin) = %d, want 2 (chain of two arrows)", got)
	}
	if got := c.Score(geom.Pos{I: 4, J: 4}); got != 1 {
		t.Fatalf("Score(4,4) = %d, want 1", got)
	}
	if got := c.Score(geom.Pos{I: 9, J: 9}); got != 0 {
		t.Fatalf("Score(9,9) = %d, want 0 (past every arrow)", got)
	}
}

func TestPruneDecreasesScore(t *testing.T) {
	arrows := []seeds.Arrow{
		{Start: geom.Pos{I: 0, J: 0}, End: geom.Pos{I: 4, J: 4}, Score: 1},
		{Start: geom.Pos{I: 4, J: 4}, End: geom.Pos{I: 8, J: 8}, Score: 1},
	}
	c := Build(arrows)

	shift := c.PruneAt(geom.Pos{I: 0, J: 0})
	if shift <= 0 {
		t.Fatalf("PruneAt(origin) shift = %d, want > 0", shift)
	}
	// The arrow starting at (4,4) is still reachable from the origin.
	if got := c.Score(geom.Pos{I: 0, J: 0}); got != 1 {
		t.Fatalf("Score(origin) after pruning its own arrow = %d, want 1", got)
	}
	// Pruning a point never increases h anywhere else.
	if got := c.Score(geom.Pos{I: 4, J: 4}); got != 1 {
		t.Fatalf("Score(4,4) after unrelated prune = %d, want unchanged 1", got)
	}
}

func TestScoreWithHintAgreesWithScore(t *testing.T) {
	arrows := []seeds.Arrow{
		{Start: geom.Pos{I: 0, J: 0}, End: geom.Pos{I: 4, J: 4}, Score: 1},
		{Start: geom.Pos{I: 4, J: 4}, End: geom.Pos{I: 8, J: 8}, Score: 1},
		{Start: geom.Pos{I: 2, J: 2}, End: geom.Pos{I: 4, J: 4}, Score: 2},
	}
	c := Build(arrows)

	for _, p := range []geom.Pos{{I: 0, J: 0}, {I: 2, J: 2}, {I: 4, J: 4}} {
		want := c.Score(p)
		got, _ := c.ScoreWithHint(p, want)
		if got != want {
			t.Fatalf("ScoreWithHint(%s, hint=%d) = %d, want %d", p, want, got, want)
		}
	}
}

func TestDominanceDropsDominatedPoint(t *testing.T) {
	set := insertDominant(nil, geom.Pos{I: 2, J: 5})
	set = insertDominant(set, geom.Pos{I: 3, J: 6}) // dominates (2,5)
	if len(set) != 1 || set[0] != (geom.Pos{I: 3, J: 6}) {
		t.Fatalf("dominant set = %v, want only (3,6)", set)
	}

	set = insertDominant(set, geom.Pos{I: 1, J: 1}) // dominated, dropped
	if len(set) != 1 {
		t.Fatalf("dominant set = %v, want (3,6) to remain alone", set)
	}
}
