package prune

import (
	"testing"

	"github.com/ndaniels/astarpa/internal/contour"
	"github.com/ndaniels/astarpa/internal/geom"
	"github.com/ndaniels/astarpa/internal/seeds"
)

type fakeStore struct {
	byStart map[geom.Pos][]seeds.Arrow
	byEnd   map[geom.Pos][]seeds.Arrow
}

func (f *fakeStore) ArrowsStartingAt(p geom.Pos) []seeds.Arrow { return f.byStart[p] }
func (f *fakeStore) ArrowsEndingAt(p geom.Pos) []seeds.Arrow   { return f.byEnd[p] }

func newFakeStore(arrows []seeds.Arrow) *fakeStore {
	f := &fakeStore{byStart: map[geom.Pos][]seeds.Arrow{}, byEnd: map[geom.Pos][]seeds.Arrow{}}
	for _, a := range arrows {
		f.byStart[a.Start] = append(f.byStart[a.Start], a)
		f.byEnd[a.End] = append(f.byEnd[a.End], a)
	}
	return f
}

func TestPruneRemovesArrowAndReportsShift(t *testing.T) {
	arrows := []seeds.Arrow{
		{Start: geom.Pos{I: 0, J: 0}, End: geom.Pos{I: 4, J: 4}, Score: 1},
	}
	c := contour.Build(arrows)
	store := newFakeStore(arrows)
	co := New(Both, 1, c, store)

	shift, _ := co.Prune(geom.Pos{I: 0, J: 0}, 0)
	if shift <= 0 {
		t.Fatalf("Prune shift = %d, want > 0", shift)
	}
	if got := c.Score(geom.Pos{I: 0, J: 0}); got != 0 {
		t.Fatalf("Score(origin) after prune = %d, want 0", got)
	}
}

func TestPruneOffIsNoOp(t *testing.T) {
	arrows := []seeds.Arrow{
		{Start: geom.Pos{I: 0, J: 0}, End: geom.Pos{I: 4, J: 4}, Score: 1},
	}
	c := contour.Build(arrows)
	store := newFakeStore(arrows)
	co := New(Off, 1, c, store)

	shift, _ := co.Prune(geom.Pos{I: 0, J: 0}, 0)
	if shift != 0 {
		t.Fatalf("Prune with mode Off returned shift = %d, want 0", shift)
	}
	if got := c.Score(geom.Pos{I: 0, J: 0}); got != 1 {
		t.Fatalf("Score(origin) after a no-op prune = %d, want unchanged 1", got)
	}
}

func TestPruneSkipPolicy(t *testing.T) {
	arrows := []seeds.Arrow{
		{Start: geom.Pos{I: 0, J: 0}, End: geom.Pos{I: 4, J: 4}, Score: 1},
	}
	c := contour.Build(arrows)
	store := newFakeStore(arrows)
	co := New(Both, 2, c, store)

	shift, _ := co.Prune(geom.Pos{I: 0, J: 0}, 0)
	if shift != 0 {
		t.Fatalf("first call under skip_n=2 should be skipped, shift = %d", shift)
	}
	if got := c.Score(geom.Pos{I: 0, J: 0}); got != 1 {
		t.Fatalf("Score(origin) after skipped prune = %d, want unchanged 1", got)
	}

	shift, _ = co.Prune(geom.Pos{I: 0, J: 0}, 0)
	if shift <= 0 {
		t.Fatalf("second call under skip_n=2 should prune, shift = %d", shift)
	}
}

func TestConsistencyCheckKeepsLongerAdjacentMatch(t *testing.T) {
	short := seeds.Arrow{Start: geom.Pos{I: 0, J: 0}, End: geom.Pos{I: 2, J: 2}, Score: 1}
	longer := seeds.Arrow{Start: geom.Pos{I: 0, J: 1}, End: geom.Pos{I: 3, J: 4}, Score: 2}
	survivors := consistent([]seeds.Arrow{short, longer})

	found := false
	for _, a := range survivors {
		if a == short {
			found = true
		}
	}
	if found {
		t.Fatalf("short arrow dominated by a longer adjacent-diagonal match should be dropped by the consistency check")
	}
	if len(survivors) != 1 || survivors[0] != longer {
		t.Fatalf("consistent() = %v, want only the longer arrow", survivors)
	}
}
