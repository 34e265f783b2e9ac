package seeds

import "github.com/ndaniels/astarpa/internal/geom"

// Arrow is a match rewritten in terms of the edit graph: a jump from
// Start to End worth Score potential units.
// Score = potential - match_cost, so it is always in {1, 2}.
type Arrow struct {
	Start, End geom.Pos
	Score      int
}

// ToArrow converts a Match found against a seed of the given potential
// into an Arrow.
func (m Match) ToArrow(potential int) Arrow {
	return Arrow{
		Start: geom.Pos{I: m.StartA, J: m.StartB},
		End:   geom.Pos{I: m.EndA, J: m.EndB},
		Score: potential - m.Cost,
	}
}

// Arrows converts every match to an arrow, looking up each match's seed
// potential from ss.
func Arrows(matches []Match, ss []Seed) []Arrow {
	out := make([]Arrow, 0, len(matches))
	for _, m := range matches {
		pot := 2
		if m.seedIndex >= 0 && m.seedIndex < len(ss) {
			pot = ss[m.seedIndex].Potential
		}
		out = append(out, m.ToArrow(pot))
	}
	return out
}
