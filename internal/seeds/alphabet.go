// Package seeds implements the seed and match extractor: it
// tiles sequence A into fixed-length seeds and finds exact and
// inexact matches for each seed in sequence B.
package seeds

import "log"

// AlphaSize is the number of letters in the DNA alphabet, fixed at 4;
// any non-DNA alphabet beyond this fixed size is out of scope.
const AlphaSize = 4

// baseValue is a 256-entry lookup indexed directly by byte value
// (rather than byte-'A') so it also accepts lowercase input without a
// separate ToUpper pass.
var baseValue [256]int8

func init() {
	for i := range baseValue {
		baseValue[i] = -1
	}
	baseValue['A'], baseValue['a'] = 0, 0
	baseValue['C'], baseValue['c'] = 1, 1
	baseValue['G'], baseValue['g'] = 2, 2
	baseValue['T'], baseValue['t'] = 3, 3
}

// BaseValue returns the 2-bit code for a DNA base, or -1 if b is not one
// of A/C/G/T (case-insensitive).
func BaseValue(b byte) int8 {
	return baseValue[b]
}

// IsACGT reports whether every byte in seq is a valid DNA base.
func IsACGT(seq []byte) bool {
	for _, b := range seq {
		if baseValue[b] < 0 {
			return false
		}
	}
	return true
}

// packKmer packs a k-mer (k <= 31) into the low 2k bits of a uint64: a
// 2-bit packing that is exact and collision-free for the fixed
// 4-letter alphabet.
//
// packKmer assumes every byte in kmer is a valid DNA base; it panics
// otherwise.
func packKmer(kmer []byte) uint64 {
	var key uint64
	for _, b := range kmer {
		v := baseValue[b]
		if v < 0 {
			log.Panicf("astarpa/seeds: invalid DNA base %q", b)
		}
		key = (key << 2) | uint64(v)
	}
	return key
}

// kmerKey is the index key: the packed 2-bit k-mer plus a small length
// tag. Tagging by length lets one map safely
// hold k-mers of different lengths (k-1, k, k+1) without collision,
// since packKmer alone would conflate e.g. "AC" and "AAC".
type kmerKey struct {
	packed uint64
	length uint8
}

func keyOf(kmer []byte) kmerKey {
	return kmerKey{packed: packKmer(kmer), length: uint8(len(kmer))}
}
