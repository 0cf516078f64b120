package main

// maxOrder is the largest k-mer width computed: single residues, pairs
// and triples (20, 400 and 8000 columns).
const maxOrder = 3

// Composition holds the k-mer counts and frequencies of one sequence.
// Counts[k-1] and Freqs[k-1] are indexed by the dense k-mer index and
// have length 20^k. Valid[k-1] is the number of windows counted, i.e.
// the sum of Counts[k-1]. A Composition is never mutated after
// composeSeq returns it.
type Composition struct {
	Counts [maxOrder][]int
	Freqs  [maxOrder][]float64
	Valid  [maxOrder]int
	Length int
}

// totalWindows returns the number of width-k windows in a sequence of
// the given length, valid or not.
func totalWindows(length, k int) int {
	if length < k {
		return 0
	}
	return length - k + 1
}

// composeSeq counts every k-mer of order 1..maxOrder in seq with a
// single left-to-right pass per order. A window containing any byte
// outside the alphabet is skipped whole: unknown characters never
// contribute partial counts. Frequencies are relative to the windows
// actually counted, so noise shrinks the denominator instead of
// deflating every frequency; on a fully valid sequence the denominator
// equals totalWindows. A sequence with no countable windows at a given
// order gets an all-zero frequency vector, never a division by zero.
func composeSeq(seq string) *Composition {
	comp := &Composition{Length: len(seq)}
	for k := 1; k <= maxOrder; k++ {
		counts := make([]int, kmerSpace(k))
		valid := 0
		for pos := 0; pos <= len(seq)-k; pos++ {
			if index := kmerIndex(seq, pos, k); index >= 0 {
				counts[index]++
				valid++
			}
		}
		freqs := make([]float64, len(counts))
		if valid > 0 {
			for i, c := range counts {
				freqs[i] = float64(c) / float64(valid)
			}
		}
		comp.Counts[k-1] = counts
		comp.Freqs[k-1] = freqs
		comp.Valid[k-1] = valid
	}
	return comp
}
