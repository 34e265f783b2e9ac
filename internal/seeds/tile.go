package seeds

// Seed is a non-overlapping, fixed-length tile of A.
// Potential is p (1 for exact-only matching, 2 when one edit is
// allowed); Cost is the learned seed_cost, the minimum match_cost found
// for this seed, capped at Potential when no match was found at all.
type Seed struct {
	Start, End int
	Potential  int
	Cost       int
}

// Tile partitions a into disjoint, left-to-right seeds of length k,
// starting at multiples of k. Any suffix shorter
// than k is left unseeded. potential is the seed_potential to assign to
// every seed -- r itself, 1 for exact-only matching or 2 when one edit
// is allowed.
func Tile(a []byte, k, potential int) []Seed {
	n := len(a) / k
	out := make([]Seed, 0, n)
	for i := 0; i+k <= len(a); i += k {
		out = append(out, Seed{
			Start:     i,
			End:       i + k,
			Potential: potential,
			Cost:      potential,
		})
	}
	return out
}

// PotentialAfter sums the potential of every seed that starts at or
// after pos -- the Σ(potentials of seeds fully after p) term of the
// h(p) formula and the pot(p) term of the transform filter.
func PotentialAfter(ss []Seed, pos int) int {
	total := 0
	for _, s := range ss {
		if s.Start >= pos {
			total += s.Potential
		}
	}
	return total
}
