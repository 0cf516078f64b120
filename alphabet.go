package main

// The 20 standard amino acid one-letter codes, in the fixed order that
// determines every k-mer index and every output column.
const aaAlphabet = "ACDEFGHIKLMNPQRSTVWY"

const aaCount = len(aaAlphabet)

var (
	// aaNum maps a byte to its position in aaAlphabet, or -1.
	aaNum = func() []int8 {
		r := make([]int8, 256)
		for i := range r {
			r[i] = -1
		}
		for i := 0; i < len(aaAlphabet); i++ {
			r[aaAlphabet[i]] = int8(i)
		}
		return r
	}()
)

// kmerSpace returns 20^k, the number of distinct k-mers and the length
// of every order-k vector.
func kmerSpace(k int) int {
	n := 1
	for i := 0; i < k; i++ {
		n *= aaCount
	}
	return n
}

// kmerLabel reconstructs the k-symbol label for a dense index, the
// inverse of the radix arithmetic used by the counting pass.
func kmerLabel(index, k int) string {
	buf := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		buf[i] = aaAlphabet[index%aaCount]
		index /= aaCount
	}
	return string(buf)
}

// kmerLabels returns all 20^k labels in index order: lexicographic in
// aaAlphabet order, first symbol varying slowest.
func kmerLabels(k int) []string {
	labels := make([]string, kmerSpace(k))
	for i := range labels {
		labels[i] = kmerLabel(i, k)
	}
	return labels
}

// kmerIndex returns the dense index of the k-mer starting at position
// pos, or -1 if any byte in the window is outside the alphabet.
func kmerIndex(seq string, pos, k int) int {
	index := 0
	for i := 0; i < k; i++ {
		n := aaNum[seq[pos+i]]
		if n < 0 {
			return -1
		}
		index = index*aaCount + int(n)
	}
	return index
}
