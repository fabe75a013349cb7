package splitfft

import (
	"math"
	"math/rand"
	"strconv"
	"testing"
)

// TestComplexRoundTripInterleaved covers property 1: forward then
// inverse on an interleaved complex buffer recovers the input within
// 1e-10 * max|B|, across every supported size in the test range.
func TestComplexRoundTripInterleaved(t *testing.T) {
	t.Parallel()

	for l := 1; l <= 12; l++ {
		n := 1 << l

		t.Run(sizeName(n), func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewSource(int64(n)))
			b := randomInterleaved(rng, n)
			orig := append([]float64(nil), b...)

			if err := FFTInterleaved(b, true, None); err != nil {
				t.Fatalf("forward: %v", err)
			}

			if err := FFTInterleaved(b, false, None); err != nil {
				t.Fatalf("inverse: %v", err)
			}

			assertClose(t, b, orig, maxAbs(orig))
		})
	}
}

// TestRealRoundTripInterleaved covers property 2 for the real-FFT
// adapter, for N >= 16.
func TestRealRoundTripInterleaved(t *testing.T) {
	t.Parallel()

	for l := 4; l <= 13; l++ {
		n := 1 << l

		t.Run(sizeName(n), func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewSource(int64(n) + 1))
			b := randomReal(rng, n)
			orig := append([]float64(nil), b...)

			if err := RealFFTInterleaved(b, true, None); err != nil {
				t.Fatalf("forward: %v", err)
			}

			if err := RealFFTInterleaved(b, false, None); err != nil {
				t.Fatalf("inverse: %v", err)
			}

			assertClose(t, b, orig, maxAbs(orig))
		})
	}
}

// TestRandomRoundTrip2048 is scenario S5.
func TestRandomRoundTrip2048(t *testing.T) {
	t.Parallel()

	const n = 2048

	rng := rand.New(rand.NewSource(2048))
	b := randomInterleaved(rng, n)
	orig := append([]float64(nil), b...)

	if err := FFTInterleaved(b, true, None); err != nil {
		t.Fatalf("forward: %v", err)
	}

	if err := FFTInterleaved(b, false, None); err != nil {
		t.Fatalf("inverse: %v", err)
	}

	assertClose(t, b, orig, maxAbs(orig))
}

// TestDoNotRezipLeavesSplitLayout checks that with DoNotRezip set, a
// forward call leaves the first half of B holding real parts and the
// second half holding imaginary parts, matching FFTSplit run directly
// on the equivalent split buffers.
func TestDoNotRezipLeavesSplitLayout(t *testing.T) {
	t.Parallel()

	const n = 64

	rng := rand.New(rand.NewSource(64))

	interleaved := randomInterleaved(rng, n)
	r := make([]float64, n)
	i := make([]float64, n)

	for k := 0; k < n; k++ {
		r[k] = interleaved[2*k]
		i[k] = interleaved[2*k+1]
	}

	if err := FFTInterleaved(interleaved, true, DoNotRezip); err != nil {
		t.Fatalf("FFTInterleaved: %v", err)
	}

	if err := FFTSplit(r, i, true, 1.0); err != nil {
		t.Fatalf("FFTSplit: %v", err)
	}

	for k := 0; k < n; k++ {
		if interleaved[k] != r[k] || interleaved[n+k] != i[k] {
			t.Fatalf("k=%d: split layout mismatch: got (%v,%v), want (%v,%v)",
				k, interleaved[k], interleaved[n+k], r[k], i[k])
		}
	}
}

// TestDoNotNormalizeScalesByN checks the DoNotNormalize inverse factor
// documented in flags.go: it should scale the result by N relative to
// the default normalized inverse, matching spec.md's "wonky" bypass.
func TestDoNotNormalizeScalesByN(t *testing.T) {
	t.Parallel()

	const n = 64 // real length

	rng := rand.New(rand.NewSource(99))
	original := randomReal(rng, n)

	normalized := append([]float64(nil), original...)
	if err := RealFFTInterleaved(normalized, true, None); err != nil {
		t.Fatalf("forward: %v", err)
	}

	unscaled := append([]float64(nil), normalized...)

	if err := RealFFTInterleaved(normalized, false, None); err != nil {
		t.Fatalf("default inverse: %v", err)
	}

	if err := RealFFTInterleaved(unscaled, false, DoNotNormalize); err != nil {
		t.Fatalf("DoNotNormalize inverse: %v", err)
	}

	for k := 0; k < n; k++ {
		want := normalized[k] * float64(n)
		if math.Abs(unscaled[k]-want) > 1e-8*math.Max(1, math.Abs(want)) {
			t.Fatalf("k=%d: DoNotNormalize = %v, want %v (= %v * %d)", k, unscaled[k], want, normalized[k], n)
		}
	}
}

// TestLinearityInterleaved covers property 3 at the public entry
// point level.
func TestLinearityInterleaved(t *testing.T) {
	t.Parallel()

	const n = 256

	rng := rand.New(rand.NewSource(256))

	x := randomInterleaved(rng, n)
	y := randomInterleaved(rng, n)

	alpha, beta := 1.5, -0.75

	combined := make([]float64, 2*n)
	for k := range combined {
		combined[k] = alpha*x[k] + beta*y[k]
	}

	if err := FFTInterleaved(combined, true, None); err != nil {
		t.Fatal(err)
	}

	if err := FFTInterleaved(x, true, None); err != nil {
		t.Fatal(err)
	}

	if err := FFTInterleaved(y, true, None); err != nil {
		t.Fatal(err)
	}

	for k := range combined {
		want := alpha*x[k] + beta*y[k]
		if math.Abs(combined[k]-want) > 1e-8 {
			t.Fatalf("k=%d: got %v, want %v", k, combined[k], want)
		}
	}
}

// TestHermitianSymmetry covers property 5: the packed real-FFT
// half-spectrum, once unpacked, must agree with the complex FFT of the
// same real samples cast to (real, 0), exploiting X[k] = conj(X[N-k]).
func TestHermitianSymmetry(t *testing.T) {
	t.Parallel()

	const n = 256

	rng := rand.New(rand.NewSource(1))
	samples := randomReal(rng, n)

	packed := append([]float64(nil), samples...)
	if err := RealFFTInterleaved(packed, true, None); err != nil {
		t.Fatal(err)
	}

	complexBuf := make([]float64, 2*n)
	for i, s := range samples {
		complexBuf[2*i] = s
	}

	if err := FFTInterleaved(complexBuf, true, None); err != nil {
		t.Fatal(err)
	}

	half := n / 2
	xRe := func(k int) float64 { return complexBuf[2*k] }
	xIm := func(k int) float64 { return complexBuf[2*k+1] }

	dc, nyquist := packed[0], packed[1]

	if math.Abs(dc-xRe(0)) > 1e-8 {
		t.Errorf("DC: packed %v, complex %v", dc, xRe(0))
	}

	if math.Abs(nyquist-xRe(half)) > 1e-8 {
		t.Errorf("Nyquist: packed %v, complex %v", nyquist, xRe(half))
	}

	for k := 1; k < half; k++ {
		gotRe, gotIm := packed[2*k], packed[2*k+1]
		if math.Abs(gotRe-xRe(k)) > 1e-8 || math.Abs(gotIm-xIm(k)) > 1e-8 {
			t.Fatalf("k=%d: packed (%v,%v), complex (%v,%v)", k, gotRe, gotIm, xRe(k), xIm(k))
		}

		mirrorRe, mirrorIm := xRe(n-k), xIm(n-k)
		if math.Abs(gotRe-mirrorRe) > 1e-8 || math.Abs(gotIm+mirrorIm) > 1e-8 {
			t.Fatalf("k=%d: X[k] != conj(X[N-k]): X[k]=(%v,%v) X[N-k]=(%v,%v)",
				k, gotRe, gotIm, mirrorRe, mirrorIm)
		}
	}
}

// TestParsevalInterleaved covers property 4 at the public API: forward
// transform preserves energy up to the 1/N scale factor.
func TestParsevalInterleaved(t *testing.T) {
	t.Parallel()

	const n = 512

	rng := rand.New(rand.NewSource(512))
	b := randomInterleaved(rng, n)

	var timeEnergy float64
	for k := 0; k < n; k++ {
		re, im := b[2*k], b[2*k+1]
		timeEnergy += re*re + im*im
	}

	if err := FFTInterleaved(b, true, None); err != nil {
		t.Fatal(err)
	}

	var freqEnergy float64
	for k := 0; k < n; k++ {
		re, im := b[2*k], b[2*k+1]
		freqEnergy += re*re + im*im
	}

	got := freqEnergy / float64(n)
	if math.Abs(got-timeEnergy) > 1e-9*timeEnergy {
		t.Fatalf("Parseval mismatch: time energy %v, (1/N)*freq energy %v", timeEnergy, got)
	}
}

func assertClose(t *testing.T, got, want []float64, scale float64) {
	t.Helper()

	tol := 1e-10 * scale
	if tol == 0 {
		tol = 1e-10
	}

	for k := range got {
		if math.Abs(got[k]-want[k]) > tol {
			t.Fatalf("k=%d: got %v, want %v (tol %v)", k, got[k], want[k], tol)
		}
	}
}

func maxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}

	return m
}

func randomInterleaved(rng *rand.Rand, n int) []float64 {
	v := make([]float64, 2*n)
	for k := range v {
		v[k] = rng.Float64()*2 - 1
	}

	return v
}

func randomReal(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for k := range v {
		v[k] = rng.Float64()*2 - 1
	}

	return v
}

func sizeName(n int) string {
	return "n=" + strconv.Itoa(n)
}
