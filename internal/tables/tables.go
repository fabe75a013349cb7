// Package tables builds the precomputed permutation and twiddle tables
// that the split-buffer butterfly and real-FFT adapter read from. All
// tables are built once by Build and are immutable afterward, so
// concurrent transform calls may share a single *Tables without locking.
package tables

// SwapPair is one (i, j) transposition in a bit-reversal permutation,
// with i < j.
type SwapPair struct {
	I, J int
}

// Tables holds every precomputed table needed by the butterfly kernel
// and the real-FFT adapter, up to a maximum depth Dmax.
type Tables struct {
	Dmax int

	// Twiddle tables, indexed [d][k] for d in [0, Dmax).
	Cos    [][]float64
	Sin    [][]float64
	SinInv [][]float64

	// SwapPairs[d] is the bit-reversal swap-pair list for depth d,
	// indexed for d in [0, Dmax).
	SwapPairs [][]SwapPair

	// UnzipCycles[d] / ZipCycles[d] are the cycle decompositions of the
	// unzip/zip permutation on a length-2^d buffer, indexed for d in
	// [2, Dmax] (so these slices have length Dmax+1; entries 0 and 1
	// are unused).
	UnzipCycles [][][]int
	ZipCycles   [][][]int
}

// Build constructs every table for depths up to dmax. dmax must be at
// least 2; the real-FFT adapter's minimum supported size requires it.
func Build(dmax int) *Tables {
	if dmax < 2 {
		panic("tables: dmax must be at least 2")
	}

	cos, sin, sinInv := buildTwiddleTables(dmax)

	return &Tables{
		Dmax:        dmax,
		Cos:         cos,
		Sin:         sin,
		SinInv:      sinInv,
		SwapPairs:   buildSwapPairTables(dmax),
		UnzipCycles: buildCycleTables(dmax, unzipRotation),
		ZipCycles:   buildCycleTables(dmax, zipRotation),
	}
}
