package splitfft

// MaxTableDepth bounds the maximum transform size: a complex transform
// of length 2^L needs tables through depth L, and the real-FFT adapter
// needs depth L+1. Both paths uniformly enforce L+1 < MaxTableDepth
// (the resolution spec.md recommends for its two conflicting revisions
// of this bound), giving a maximum complex length of
// 2^(MaxTableDepth-2) and the same bound on the real length's half -
// so the real length itself tops out at 2^(MaxTableDepth-1).
const MaxTableDepth = 18

// checkComplexDepth reports whether a complex transform of length 2^l
// fits under MaxTableDepth.
func checkComplexDepth(l int) error {
	if l+1 >= MaxTableDepth {
		return ErrDepthExceeded
	}

	return nil
}
