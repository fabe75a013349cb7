package splitfft

// Flags is a bitfield accepted by the interleaved entry points.
type Flags int

const (
	// None requests the default behavior: rezip after the transform,
	// and the standard 1/n inverse normalization.
	None Flags = 0

	// DoNotRezip leaves the output of FFTInterleaved / RealFFTInterleaved
	// in split layout (first half real, second half imaginary) instead
	// of restoring the interleaved layout.
	DoNotRezip Flags = 1 << 0

	// DoNotNormalize changes RealFFTInterleaved's inverse normalize
	// factor from 1.0 to N (the real transform length), reproducing the
	// source library's documented, if "wonky", bypass behavior rather
	// than a clean unscaled inverse.
	DoNotNormalize Flags = 1 << 1
)
