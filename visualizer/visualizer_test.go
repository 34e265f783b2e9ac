package visualizer

import (
	"testing"

	"github.com/ndaniels/astarpa/internal/geom"
)

func TestRecorderCapturesEventsInOrder(t *testing.T) {
	r := NewRecorder()
	r.NewLayer(3)
	r.Expand(geom.Pos{I: 1, J: 1}, 1, 3)
	r.Explore(geom.Pos{I: 2, J: 1}, 2, 4)
	r.LastFrame("2=")

	want := []string{"new_layer", "expand", "explore", "last_frame"}
	if len(r.Events) != len(want) {
		t.Fatalf("Events = %v, want %d entries", r.Events, len(want))
	}
	for i, k := range want {
		if r.Events[i].Kind != k {
			t.Fatalf("Events[%d].Kind = %q, want %q", i, r.Events[i].Kind, k)
		}
	}
	if r.Expanded() != 1 {
		t.Fatalf("Expanded() = %d, want 1", r.Expanded())
	}
}

func TestNullIsHarmless(t *testing.T) {
	var v Visualizer = Null{}
	v.Expand(geom.Pos{}, 0, 0)
	v.Explore(geom.Pos{}, 0, 0)
	v.NewLayer(0)
	v.LastFrame("")
}
