// Package visualizer provides a recording/no-op callback sink:
// Expand/Explore/NewLayer calls during the A* loop, and a LastFrame
// call once a CIGAR is final. It is a small atomically-updated counter
// struct with a cheap increment path, except here the "display" is an
// append to an in-memory frame log rather than a terminal redraw,
// since there's no fixed total to report a percentage against.
package visualizer

import (
	"sync/atomic"

	"github.com/ndaniels/astarpa/internal/geom"
)

// Event is one recorded callback, in the order it was received.
type Event struct {
	Kind string // "expand", "explore", "new_layer", "last_frame"
	Pos  geom.Pos
	G, F int
}

// Visualizer receives expand(pos, g, f), explore(pos, g, f),
// new_layer(f), and last_frame(cigar) calls in order; it may be a
// no-op. Expand/Explore/NewLayer come from Core A's expand loop only;
// LastFrame is sent once for either engine.
type Visualizer interface {
	Expand(p geom.Pos, g, f int)
	Explore(p geom.Pos, g, f int)
	NewLayer(f int)
	LastFrame(cigar string)
}

// Null is the default, zero-cost implementation.
type Null struct{}

func (Null) Expand(geom.Pos, int, int)  {}
func (Null) Explore(geom.Pos, int, int) {}
func (Null) NewLayer(int)               {}
func (Null) LastFrame(string)           {}

// Recorder accumulates every callback into Events, for tests and the
// CLI's optional trace dump. expanded is kept as an atomic counter
// since a visualizer may in principle be driven from more than one
// search pass (global doubling retries).
type Recorder struct {
	expanded uint64
	Events   []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Expand(p geom.Pos, g, f int) {
	atomic.AddUint64(&r.expanded, 1)
	r.Events = append(r.Events, Event{Kind: "expand", Pos: p, G: g, F: f})
}

func (r *Recorder) Explore(p geom.Pos, g, f int) {
	r.Events = append(r.Events, Event{Kind: "explore", Pos: p, G: g, F: f})
}

func (r *Recorder) NewLayer(f int) {
	r.Events = append(r.Events, Event{Kind: "new_layer", F: f})
}

func (r *Recorder) LastFrame(cigar string) {
	r.Events = append(r.Events, Event{Kind: "last_frame"})
}

// Expanded reports how many Expand callbacks have been recorded.
func (r *Recorder) Expanded() uint64 {
	return atomic.LoadUint64(&r.expanded)
}
