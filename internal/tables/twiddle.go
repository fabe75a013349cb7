package tables

import "math"

// buildTwiddleTables computes CosTable, SinTable and SinInvTable for
// every depth d in [0, dmax). CosTable[d][0] == 1 and SinTable[d][0] ==
// 0 for every d, since W^0 = 1 at every stage.
func buildTwiddleTables(dmax int) (cos, sin, sinInv [][]float64) {
	cos = make([][]float64, dmax)
	sin = make([][]float64, dmax)
	sinInv = make([][]float64, dmax)

	for d := 0; d < dmax; d++ {
		n := 1 << d
		c := make([]float64, n)
		s := make([]float64, n)
		si := make([]float64, n)

		for k := 0; k < n; k++ {
			theta := -2.0 * math.Pi * float64(k) / float64(n)
			c[k] = math.Cos(theta)
			s[k] = math.Sin(theta)
			si[k] = -s[k]
		}

		cos[d], sin[d], sinInv[d] = c, s, si
	}

	return cos, sin, sinInv
}
