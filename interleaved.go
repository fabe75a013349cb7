package splitfft

import (
	"github.com/cwbudde/splitfft/internal/bitmath"
	"github.com/cwbudde/splitfft/internal/butterfly"
)

// FFTInterleaved runs an in-place complex FFT on b, a buffer of
// interleaved real/imaginary pairs (len(b) = 2n for a complex length
// n, n a power of two). It unzips b into split layout, runs the split
// transform, and rezips the result back to interleaved layout unless
// DoNotRezip is set.
func FFTInterleaved(b []float64, forward bool, flags Flags) error {
	if !ready {
		return ErrUninitialized
	}

	total := len(b)
	if total == 0 || total%2 != 0 {
		return ErrInvalidLength
	}

	n := total / 2
	if !bitmath.IsPowerOfTwo(n) {
		return ErrInvalidLength
	}

	l := bitmath.Log2(n)
	if err := checkComplexDepth(l); err != nil {
		return err
	}

	depth := l + 1

	butterfly.Unzip(b, tbl.UnzipCycles[depth])

	r, i := b[:n], b[n:]
	butterfly.Split(r, i, tbl, forward, 1.0)

	if flags&DoNotRezip == 0 {
		butterfly.Zip(b, tbl.ZipCycles[depth])
	}

	return nil
}

// RealFFTInterleaved runs an in-place real FFT on b (len(b) = N, N a
// power of two, N >= 16). It unzips b into even/odd halves, runs the
// split real-FFT adapter, and rezips the result back unless
// DoNotRezip is set. On a forward call the result is the packed
// half-spectrum described by RealFFTSplit, laid out in the unzipped
// halves (or rezipped if DoNotRezip is clear).
func RealFFTInterleaved(b []float64, forward bool, flags Flags) error {
	if !ready {
		return ErrUninitialized
	}

	n := len(b)
	if !bitmath.IsPowerOfTwo(n) {
		return ErrInvalidLength
	}

	half := n / 2
	if half < 8 {
		return ErrTooShort
	}

	depth := bitmath.Log2(n)
	if depth >= MaxTableDepth {
		return ErrDepthExceeded
	}

	normalize := 1.0
	if flags&DoNotNormalize != 0 {
		normalize = float64(n)
	}

	butterfly.Unzip(b, tbl.UnzipCycles[depth])

	re, im := b[:half], b[half:]
	if err := RealFFTSplit(re, im, forward, normalize); err != nil {
		return err
	}

	if flags&DoNotRezip == 0 {
		butterfly.Zip(b, tbl.ZipCycles[depth])
	}

	return nil
}
