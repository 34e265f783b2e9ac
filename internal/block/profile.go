package block

import "github.com/ndaniels/astarpa/internal/seeds"

// Profile precomputes, for each 64-row word of B and each of the four
// DNA bases, the match mask of that base against every row in the
// word.
type Profile struct {
	words int
	n     int
	masks [seeds.AlphaSize][]uint64
}

// NewProfile builds a Profile over b.
func NewProfile(b []byte) *Profile {
	words := (len(b) + WordBits - 1) / WordBits
	if words == 0 {
		words = 1
	}
	p := &Profile{words: words, n: len(b)}
	for base := 0; base < seeds.AlphaSize; base++ {
		p.masks[base] = make([]uint64, words)
	}
	for j, c := range b {
		v := seeds.BaseValue(c)
		if v < 0 {
			continue
		}
		w, bit := j/WordBits, uint(j%WordBits)
		p.masks[v][w] |= 1 << bit
	}
	return p
}

// Eq returns the match mask for base against word w.
func (p *Profile) Eq(base byte, w int) uint64 {
	v := seeds.BaseValue(base)
	if v < 0 {
		return 0
	}
	return p.masks[v][w]
}

// Words is the number of 64-row words covering B.
func (p *Profile) Words() int {
	return p.words
}

// RowsInWord returns how many of word w's 64 bits are real rows of B.
func (p *Profile) RowsInWord(w int) uint {
	if w < p.words-1 {
		return WordBits
	}
	last := p.n % WordBits
	if last == 0 {
		return WordBits
	}
	return uint(last)
}
