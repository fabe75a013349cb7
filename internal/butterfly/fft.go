// Package butterfly implements the in-place radix-2 Cooley-Tukey
// decimation-in-time transform on split real/imaginary arrays, plus
// the bit-reversal and unzip/zip permutations that feed it.
package butterfly

import (
	"github.com/cwbudde/splitfft/internal/bitmath"
	"github.com/cwbudde/splitfft/internal/tables"
)

// Split performs the in-place split-layout radix-2 FFT on r, i (equal
// power-of-two length n = 2^L, L >= 1). Callers must have already
// validated length, depth and initialization; Split itself performs
// no bounds or depth checking.
//
// On a forward call the output overwrites r, i with the DFT. On an
// inverse call the negated-angle twiddles are used and the result is
// scaled by normalize/n after the last stage.
func Split(r, i []float64, tb *tables.Tables, forward bool, normalize float64) {
	n := len(r)
	l := bitmath.Log2(n)

	sinTable := tb.Sin
	if !forward {
		sinTable = tb.SinInv
	}

	BitReverseSplit(r, i, tb.SwapPairs[l])

	for s := 1; s <= l; s++ {
		m := 1 << s
		h := m / 2
		runStage(s, r, i, tb.Cos[s], sinTable[s], n, m, h)
	}

	if !forward {
		scaleSplit(r, i, normalize/float64(n))
	}
}
