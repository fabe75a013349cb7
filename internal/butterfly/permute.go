package butterfly

import "github.com/cwbudde/splitfft/internal/tables"

// BitReverseSplit applies the depth-L bit-reversal permutation to both
// R and I in place, in a single branch-light pass over the precomputed
// swap-pair list.
func BitReverseSplit(r, i []float64, swapPairs []tables.SwapPair) {
	for _, p := range swapPairs {
		r[p.I], r[p.J] = r[p.J], r[p.I]
		i[p.I], i[p.J] = i[p.J], i[p.I]
	}
}

// Unzip de-interleaves a length-2^d buffer in place: even-indexed
// elements move to the first half, odd-indexed elements to the second
// half. It uses one scratch value per disjoint cycle and performs
// exactly len(b)-2 writes beyond the per-cycle saves.
func Unzip(b []float64, cycles [][]int) {
	applyCycles(b, cycles)
}

// Zip is the inverse of Unzip: it re-interleaves a de-interleaved
// length-2^d buffer in place.
func Zip(b []float64, cycles [][]int) {
	applyCycles(b, cycles)
}

// applyCycles rotates each disjoint cycle in place: for cycle c, the
// value at c[i] moves to c[i+1] (indices mod len(c)). One element of
// scratch per cycle is enough since the rotation is applied forward
// from the saved final element.
func applyCycles(b []float64, cycles [][]int) {
	for _, c := range cycles {
		last := len(c) - 1
		saved := b[c[last]]

		for _, idx := range c {
			old := b[idx]
			b[idx] = saved
			saved = old
		}
	}
}
