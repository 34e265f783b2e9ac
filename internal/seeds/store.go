package seeds

import "github.com/ndaniels/astarpa/internal/geom"

// ArrowStore indexes a fixed arrow set by Start and End position, so
// the pruning coordinator can find what to remove in O(1).
type ArrowStore struct {
	byStart map[geom.Pos][]Arrow
	byEnd   map[geom.Pos][]Arrow
}

// NewArrowStore indexes arrows by both endpoints.
func NewArrowStore(arrows []Arrow) *ArrowStore {
	s := &ArrowStore{
		byStart: make(map[geom.Pos][]Arrow, len(arrows)),
		byEnd:   make(map[geom.Pos][]Arrow, len(arrows)),
	}
	for _, a := range arrows {
		s.byStart[a.Start] = append(s.byStart[a.Start], a)
		s.byEnd[a.End] = append(s.byEnd[a.End], a)
	}
	return s
}

// ArrowsStartingAt returns every arrow beginning at p.
func (s *ArrowStore) ArrowsStartingAt(p geom.Pos) []Arrow {
	return s.byStart[p]
}

// ArrowsEndingAt returns every arrow ending at p.
func (s *ArrowStore) ArrowsEndingAt(p geom.Pos) []Arrow {
	return s.byEnd[p]
}
