package seeds

import "sync"

// Index is a hash index of all k-mers of B, and
// additionally the (k-1)-mers and (k+1)-mers when r=2: a table of
// lists of positions keyed by a packed k-mer hash, guarded by an
// RWMutex, but keyed by a single map (kmerKey carries the length tag)
// instead of a dense array, since DNA k-mers for k up to 31 don't fit
// in an array indexed by hash.
type Index struct {
	k, r int

	mu  sync.RWMutex
	loc map[kmerKey][]int // k-mer -> its positions in B, sorted ascending
}

// Build constructs an Index over b for the given seed length k and
// match-cost bound r.
func Build(b []byte, k, r int) *Index {
	idx := &Index{
		k:   k,
		r:   r,
		loc: make(map[kmerKey][]int),
	}
	idx.addAll(b, k)
	if r == 2 {
		if k-1 >= 1 {
			idx.addAll(b, k-1)
		}
		idx.addAll(b, k+1)
	}
	return idx
}

// addAll indexes every length-length window of b. Windows containing a
// non-ACGT byte are skipped.
func (idx *Index) addAll(b []byte, length int) {
	if length <= 0 || length > len(b) {
		return
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for i := 0; i+length <= len(b); i++ {
		kmer := b[i : i+length]
		if !IsACGT(kmer) {
			continue
		}
		key := keyOf(kmer)
		idx.loc[key] = append(idx.loc[key], i)
	}
}

// Lookup returns the (copied) sorted positions in B at which kmer
// occurs. The copy keeps the caller from mutating the index's backing
// slice.
func (idx *Index) Lookup(kmer []byte) []int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	hits := idx.loc[keyOf(kmer)]
	if len(hits) == 0 {
		return nil
	}
	cpy := make([]int, len(hits))
	copy(cpy, hits)
	return cpy
}
