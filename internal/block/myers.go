// Package block implements the bitpacked block engine: the
// Myers bit-parallel DP update, packed two bits of vertical delta per
// cell into 64-bit words, advanced one column at a time.
//
// The per-word update follows Hyyrö's formulation of Myers' 1999
// algorithm; bits.OnesCount-style word tricks are the one place in this
// module the standard library is the only real option (see DESIGN.md
// -- no example repo carries a bit-parallel edit-distance kernel, and
// reimplementing math/bits by hand would be pure busywork, not an
// ecosystem choice).
package block

import "math/bits"

// WordBits is the number of DP rows packed into one (pv, mv) word pair.
const WordBits = 64

// stepWord advances one 64-row word by one column, given the match
// mask eq, the previous (pv, mv), and the incoming horizontal carry
// (-1, 0, or +1). It returns the new (pv, mv) and the outgoing carry.
func stepWord(eq, pv, mv uint64, hin int) (pvNew, mvNew uint64, hout int) {
	xv := eq | mv
	if hin < 0 {
		eq |= 1
	}
	xh := (((eq & pv) + pv) ^ pv) | eq
	ph := mv | ^(xh | pv)
	mh := pv & xh

	hout = 0
	if ph&(1<<(WordBits-1)) != 0 {
		hout = 1
	} else if mh&(1<<(WordBits-1)) != 0 {
		hout = -1
	}

	ph <<= 1
	mh <<= 1
	if hin > 0 {
		ph |= 1
	} else if hin < 0 {
		mh |= 1
	}

	pvNew = mh | ^(xv | ph)
	mvNew = ph & xv
	return pvNew, mvNew, hout
}

// deltaAt returns the vertical delta encoded for row bit in (pv, mv):
// +1, 0, or -1.
func deltaAt(pv, mv uint64, bit uint) int {
	switch {
	case pv&(1<<bit) != 0:
		return 1
	case mv&(1<<bit) != 0:
		return -1
	default:
		return 0
	}
}

// rowSum returns the sum of deltas encoded in the low n bits of (pv, mv)
// -- the change in D between row 0 and row n of this word.
func rowSum(pv, mv uint64, n uint) int {
	if n == 0 {
		return 0
	}
	mask := uint64(1)<<n - 1
	if n == WordBits {
		mask = ^uint64(0)
	}
	return bits.OnesCount64(pv&mask) - bits.OnesCount64(mv&mask)
}
