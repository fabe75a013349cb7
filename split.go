package splitfft

import (
	"github.com/cwbudde/splitfft/internal/bitmath"
	"github.com/cwbudde/splitfft/internal/butterfly"
	"github.com/cwbudde/splitfft/internal/realfft"
)

// FFTSplit runs an in-place complex FFT on the split real/imaginary
// arrays r, i (|r| = |i| = n, n a power of two). Set forward to run
// the forward transform; otherwise the inverse is run and every
// element is scaled by normalize/n afterward. normalize is typically
// 1.0.
func FFTSplit(r, i []float64, forward bool, normalize float64) error {
	if !ready {
		return ErrUninitialized
	}

	n := len(r)
	if len(i) != n {
		return ErrLengthMismatch
	}

	if !bitmath.IsPowerOfTwo(n) {
		return ErrInvalidLength
	}

	l := bitmath.Log2(n)
	if err := checkComplexDepth(l); err != nil {
		return err
	}

	butterfly.Split(r, i, tbl, forward, normalize)

	return nil
}

// RealFFTSplit runs an in-place real-FFT adapter on re, im (|re| =
// |im| = n/2 for an effective real length n = 2*len(re)). On a forward
// call, re holds the even-indexed real samples and im the odd-indexed
// ones; on return they hold the packed half-spectrum (DC in re[0],
// Nyquist in im[0]). An inverse call reverses this.
func RealFFTSplit(re, im []float64, forward bool, normalize float64) error {
	if !ready {
		return ErrUninitialized
	}

	half := len(re)
	if len(im) != half {
		return ErrLengthMismatch
	}

	if !bitmath.IsPowerOfTwo(half) {
		return ErrInvalidLength
	}

	if half < realfft.MinComplexLen {
		return ErrTooShort
	}

	l := bitmath.Log2(half)
	if err := checkComplexDepth(l); err != nil {
		return err
	}

	realfft.Split(re, im, tbl, forward, normalize)

	return nil
}
