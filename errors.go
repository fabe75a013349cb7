package splitfft

import "errors"

// Sentinel errors returned by the transform entry points. Every failure
// mode here is a programmer error: a caller that checks sizes and
// initialization up front will never see one.
var (
	// ErrInvalidLength is returned when a buffer length is not a
	// supported power of two.
	ErrInvalidLength = errors.New("splitfft: length is not a supported power of two")

	// ErrLengthMismatch is returned when split real/imaginary buffers
	// have different lengths.
	ErrLengthMismatch = errors.New("splitfft: split buffers have different lengths")

	// ErrDepthExceeded is returned when log2 of the complex length (for
	// the real transforms, log2 of half the real length), plus one, is
	// not strictly less than MaxTableDepth.
	ErrDepthExceeded = errors.New("splitfft: transform depth exceeds MaxTableDepth")

	// ErrTooShort is returned when a real-FFT length is below the
	// supported minimum of 16.
	ErrTooShort = errors.New("splitfft: real transform length is below the supported minimum of 16")

	// ErrUninitialized is returned when a transform is called before
	// Initialize.
	ErrUninitialized = errors.New("splitfft: Initialize has not been called")
)
