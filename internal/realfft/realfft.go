// Package realfft implements the real-input FFT adapter: it reduces an
// N-point real transform to an N/2-point split complex transform via
// internal/butterfly, then de-mixes (or re-mixes, on the inverse) the
// spectra using twiddles one depth deeper than the complex transform
// itself.
package realfft

import (
	"github.com/cwbudde/splitfft/internal/bitmath"
	"github.com/cwbudde/splitfft/internal/butterfly"
	"github.com/cwbudde/splitfft/internal/tables"
)

// MinComplexLen is the minimum supported length of Re/Im (n/2 in the
// spec's terms): real transform length N must be at least 2*MinComplexLen.
const MinComplexLen = 8

// Split performs the in-place real-FFT adapter on Re, Im (each of
// length half = N/2, a power of two >= MinComplexLen). Callers must
// have already validated length, depth and initialization.
//
// Forward: Re holds even-indexed real samples, Im holds odd-indexed
// real samples; on return Re, Im hold the packed half-spectrum (slot 0
// carries DC in Re[0] and Nyquist in Im[0]).
//
// Inverse: Re, Im hold the packed half-spectrum; on return they hold
// the even/odd samples of the reconstructed real signal, scaled by
// normalize/half inside the underlying complex inverse transform.
func Split(re, im []float64, tb *tables.Tables, forward bool, normalize float64) {
	half := len(re)
	l := bitmath.Log2(half)
	cos := tb.Cos[l+1]

	if forward {
		butterfly.Split(re, im, tb, true, 1.0)
		combineForward(re, im, cos, tb.Sin[l+1])
	} else {
		// combineInversePair's 2x2 solve is the algebraic inverse of
		// combineForwardPair's formulas, which were built on tb.Sin: it
		// must be fed that same forward-angle table, not the negated one
		// the complex butterfly below uses for its own inverse.
		combineInverse(re, im, cos, tb.Sin[l+1])
		butterfly.Split(re, im, tb, false, normalize)
	}
}

// combineForward de-mixes the H-point complex spectrum F (currently
// sitting in re, im) into the packed N-point real half-spectrum.
func combineForward(re, im, cos, sin []float64) {
	half := len(re)
	mid := half / 2
	r0, i0 := re[0], im[0]

	for k := 1; k < mid; k++ {
		combineForwardPair(re, im, cos, sin, k, half-k)
	}

	combineForwardSelf(re, im, cos, sin, mid)

	re[0] = r0 + i0
	im[0] = r0 - i0
}

// combineForwardPair applies the mirrored-pair de-mix formula at
// indices k and m = half-k (k < m).
func combineForwardPair(re, im, cos, sin []float64, k, m int) {
	frek, fimk := re[k], im[k]
	frem, fimm := re[m], im[m]

	e := frek + frem
	f := fimk - fimm
	diffRe := frek - frem
	sumIm := fimk + fimm

	a := diffRe * sin[k]
	b := sumIm * cos[k]
	c := diffRe * cos[k]
	d := sumIm * sin[k]

	re[k] = 0.5 * (e + (a + b))
	im[k] = 0.5 * (f + (d - c))
	re[m] = 0.5 * (e - (a + b))
	im[m] = 0.5 * ((d - c) - f)
}

// combineForwardSelf handles the self-mirrored midpoint k = m = half/2,
// where the pair formula degenerates to a pure conjugation.
func combineForwardSelf(re, im, cos, sin []float64, k int) {
	frek, fimk := re[k], im[k]

	b := 2 * fimk * cos[k]
	d := 2 * fimk * sin[k]

	re[k] = frek + 0.5*b
	im[k] = 0.5 * d
}

// combineInverse re-mixes the packed N-point real half-spectrum
// (currently sitting in re, im) back into the H-point complex spectrum
// F that the complex inverse transform expects.
func combineInverse(re, im, cos, sin []float64) {
	half := len(re)
	mid := half / 2

	dc, nyquist := re[0], im[0]
	r0 := 0.5 * (dc + nyquist)
	i0 := 0.5 * (dc - nyquist)

	for k := 1; k < mid; k++ {
		combineInversePair(re, im, cos, sin, k, half-k)
	}

	combineInverseSelf(re, im, mid)

	re[0] = r0
	im[0] = i0
}

// combineInversePair inverts combineForwardPair at indices k and
// m = half-k by solving the 2x2 rotation system relating (a+b, d-c) to
// (diffRe, sumIm).
func combineInversePair(re, im, cos, sin []float64, k, m int) {
	xrek, ximk := re[k], im[k]
	xrem, ximm := re[m], im[m]

	e := xrek + xrem
	abSum := xrek - xrem
	f := ximk - ximm
	dcDiff := ximk + ximm

	diffRe := sin[k]*abSum - cos[k]*dcDiff
	sumIm := cos[k]*abSum + sin[k]*dcDiff

	re[k] = 0.5 * (e + diffRe)
	re[m] = 0.5 * (e - diffRe)
	im[k] = 0.5 * (f + sumIm)
	im[m] = 0.5 * (sumIm - f)
}

// combineInverseSelf inverts combineForwardSelf: the forward map at the
// midpoint is a pure conjugation, so its inverse is the same conjugation.
func combineInverseSelf(re, im []float64, k int) {
	im[k] = -im[k]
}
