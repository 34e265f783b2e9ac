// Package costmodel defines the interface boundary for non-unit and
// affine edit costs. Unit-cost Levenshtein distance, the only cost
// model this module actually computes, never calls through it; it
// exists so Core A and Core B's edge-cost sites have a single named
// seam to extend from, without committing to an implementation the
// specification explicitly places out of scope.
package costmodel

// Model assigns a cost to each edit operation. UnitCost implements it
// trivially; an affine-gap or arbitrary-substitution-matrix model would
// implement it without either core needing to change its call sites.
type Model interface {
	Match(a, b byte) int
	Substitution(a, b byte) int
	Insertion(b byte) int
	Deletion(a byte) int
}

// Unit is the only Model this package provides: every edit costs
// exactly 1, matches cost 0.
type Unit struct{}

func (Unit) Match(a, b byte) int {
	if a != b {
		return 1
	}
	return 0
}
func (Unit) Substitution(byte, byte) int { return 1 }
func (Unit) Insertion(byte) int          { return 1 }
func (Unit) Deletion(byte) int           { return 1 }
