package seeds

import "sort"

// Match is a single seed occurrence in B, exact or with <= 1 edit.
type Match struct {
	StartA, EndA int
	StartB, EndB int
	Cost         int

	// seedIndex is the tile index of the seed this match was generated
	// from; it is used to learn seed costs, to look up the seed's
	// potential in Arrows, and by the look-ahead filter.
	seedIndex int
}

// Extract finds, for every seed, all exact and (if r=2) <=1-edit
// matches in b: build the index (done by the caller via Build), tile
// (done by the caller via Tile), query, then emit+sort+dedup. Extract
// performs the query and emit+sort+dedup steps.
func Extract(a, b []byte, ss []Seed, idx *Index, r int) []Match {
	var out []Match
	for si, s := range ss {
		seed := a[s.Start:s.End]

		for _, pos := range idx.Lookup(seed) {
			out = append(out, Match{
				StartA: s.Start, EndA: s.End,
				StartB: pos, EndB: pos + len(seed),
				Cost: 0, seedIndex: si,
			})
		}

		if r == 2 {
			for _, mut := range substitutions(seed) {
				for _, pos := range idx.Lookup(mut) {
					out = append(out, Match{
						StartA: s.Start, EndA: s.End,
						StartB: pos, EndB: pos + len(mut),
						Cost: 1, seedIndex: si,
					})
				}
			}
			if len(seed) > 1 {
				for _, mut := range deletions(seed) {
					for _, pos := range idx.Lookup(mut) {
						out = append(out, Match{
							StartA: s.Start, EndA: s.End,
							StartB: pos, EndB: pos + len(mut),
							Cost: 1, seedIndex: si,
						})
					}
				}
			}
			for _, mut := range insertions(seed) {
				for _, pos := range idx.Lookup(mut) {
					out = append(out, Match{
						StartA: s.Start, EndA: s.End,
						StartB: pos, EndB: pos + len(mut),
						Cost: 1, seedIndex: si,
					})
				}
			}
		}
	}

	out = sortAndDedup(out)
	learnSeedCosts(ss, out)
	return out
}

// sortAndDedup sorts by (start, end, match_cost) and deduplicates by
// (start, end) keeping the minimum cost.
func sortAndDedup(matches []Match) []Match {
	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.StartA != b.StartA {
			return a.StartA < b.StartA
		}
		if a.StartB != b.StartB {
			return a.StartB < b.StartB
		}
		if a.EndA != b.EndA {
			return a.EndA < b.EndA
		}
		if a.EndB != b.EndB {
			return a.EndB < b.EndB
		}
		return a.Cost < b.Cost
	})

	out := matches[:0:0]
	for i, m := range matches {
		if i > 0 {
			p := matches[i-1]
			if p.StartA == m.StartA && p.StartB == m.StartB &&
				p.EndA == m.EndA && p.EndB == m.EndB {
				continue // later entries have Cost >= kept entry's Cost
			}
		}
		out = append(out, m)
	}
	return out
}

// learnSeedCosts updates each seed's Cost to the minimum match_cost
// found for it.
func learnSeedCosts(ss []Seed, matches []Match) {
	for _, m := range matches {
		if m.seedIndex < 0 || m.seedIndex >= len(ss) {
			continue
		}
		if m.Cost < ss[m.seedIndex].Cost {
			ss[m.seedIndex].Cost = m.Cost
		}
	}
}
