package butterfly

// runStage performs every radix-2 butterfly of stage s: for block
// offsets k = 0, m, 2m, ..., n-m and lane offsets j = 0..h-1 (h = m/2),
// it combines R[k+j], I[k+j] with R[k+j+h], I[k+j+h] using twiddle
// cos[j], sin[j].
//
// Stages 1 and 2 run scalar; stage 3 is batched in lanes of 2 doubles,
// stage 4 in lanes of 4, and stage 5 and above in lanes of 8. In every
// batched stage the j = 0 butterfly runs on its own and any lanes left
// after the last full batch run one at a time.
func runStage(s int, r, i, cos, sin []float64, n, m, h int) {
	switch {
	case s <= 2:
		stageScalar(r, i, cos, sin, n, m, h)
	case s == 3:
		stageWidth(r, i, cos, sin, n, m, h, 2)
	case s == 4:
		stageWidth(r, i, cos, sin, n, m, h, 4)
	default:
		stageWidth(r, i, cos, sin, n, m, h, 8)
	}
}

// butterfly combines the even leg (re, ie) and odd leg (ro, io) under
// twiddle (wre, wim), writing the results back to the even/odd slots.
func butterfly(r, i []float64, e, o int, wre, wim float64) {
	tr := wre*r[o] - wim*i[o]
	ti := wim*r[o] + wre*i[o]

	re, ie := r[e], i[e]

	r[e] = re + tr
	i[e] = ie + ti
	r[o] = re - tr
	i[o] = ie - ti
}

// butterflyUnit is the j=0 special case: the twiddle is (1,0), so the
// two complex multiplies degenerate to a plain add/sub.
func butterflyUnit(r, i []float64, e, o int) {
	re, ie := r[e], i[e]
	ro, io := r[o], i[o]

	r[e] = re + ro
	i[e] = ie + io
	r[o] = re - ro
	i[o] = ie - io
}

func stageScalar(r, i, cos, sin []float64, n, m, h int) {
	for k := 0; k < n; k += m {
		butterflyUnit(r, i, k, k+h)

		for j := 1; j < h; j++ {
			e := k + j
			butterfly(r, i, e, e+h, cos[j], sin[j])
		}
	}
}

// stageWidth runs one stage in batches of `width` lanes at a time. Go
// has no portable SIMD vector type in the standard library, so each
// batch is an inner loop of scalar butterflies. All batched widths
// share this one function with width passed in at run time; there is
// no separate or unrolled body per width.
func stageWidth(r, i, cos, sin []float64, n, m, h, width int) {
	for k := 0; k < n; k += m {
		butterflyUnit(r, i, k, k+h)

		j := 1
		for ; j+width <= h; j += width {
			base := k + j
			for lane := 0; lane < width; lane++ {
				e := base + lane
				butterfly(r, i, e, e+h, cos[j+lane], sin[j+lane])
			}
		}

		for ; j < h; j++ {
			e := k + j
			butterfly(r, i, e, e+h, cos[j], sin[j])
		}
	}
}

// scaleSplit multiplies every element of r and i by scale. Used on the
// inverse transform's final pass; vectorizes trivially at any width
// since there is no cross-lane dependency.
func scaleSplit(r, i []float64, scale float64) {
	for k := range r {
		r[k] *= scale
		i[k] *= scale
	}
}
