package tables

import "github.com/cwbudde/splitfft/internal/bitmath"

// buildSwapPairTables produces the bit-reversal swap-pair list for every
// depth d in [0, dmax). Fixed points and the second element of each
// reverse-pair are omitted: each non-trivial orbit contributes exactly
// one (i, j) pair with i < j.
func buildSwapPairTables(dmax int) [][]SwapPair {
	tables := make([][]SwapPair, dmax)

	for d := 0; d < dmax; d++ {
		n := 1 << d
		touched := make([]bool, n)

		var pairs []SwapPair

		for j := 0; j < n; j++ {
			if touched[j] {
				continue
			}

			r := bitmath.ReverseBits(j, d)
			if r != j {
				pairs = append(pairs, SwapPair{I: j, J: r})
				touched[j] = true
				touched[r] = true
			}
		}

		tables[d] = pairs
	}

	return tables
}
