// Package splitfft implements an in-place, iterative, radix-2
// Cooley-Tukey FFT engine over double-precision floats.
//
// The core transform operates on split real/imaginary arrays rather
// than interleaved complex pairs: internal/butterfly carries the
// staged, lane-width-specialized butterfly kernel, internal/tables
// precomputes the bit-reversal and unzip/zip permutations plus the
// twiddle factors it reads from, and internal/realfft folds an N-point
// real transform onto an N/2-point complex one. The four entry points
// at the package root (FFTSplit, FFTInterleaved, RealFFTSplit,
// RealFFTInterleaved) are thin, validating wrappers around that core;
// Initialize builds the tables they all share.
//
// Supported sizes are powers of two only. There is no mixed-radix or
// prime-factor path, no multithreaded dispatch, no single-precision
// variant, and no streaming or windowed convolution support.
package splitfft
