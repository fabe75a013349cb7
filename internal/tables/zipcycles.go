package tables

import "github.com/cwbudde/splitfft/internal/bitmath"

// unzipRotation and zipRotation are the two permutations whose cycle
// decompositions are precomputed: unzip sends position p to
// rotate_right(p, d), and zip (its inverse) sends p to rotate_left(p, d).
func unzipRotation(p, d int) int { return bitmath.RotateRight(p, d) }
func zipRotation(p, d int) int   { return bitmath.RotateLeft(p, d) }

// buildCycleTables produces the disjoint-cycle decomposition of rot for
// every depth d in [2, dmax]. Positions 0 and 2^d-1 are always fixed
// points of rotate_right/rotate_left and are omitted from every cycle.
// The returned slice has length dmax+1; entries at index 0 and 1 are
// nil since no depth below 2 is defined.
func buildCycleTables(dmax int, rot func(p, d int) int) [][][]int {
	tables := make([][][]int, dmax+1)

	for d := 2; d <= dmax; d++ {
		n := 1 << d
		touched := make([]bool, n)

		var cycles [][]int

		for leader := 1; leader <= n-2; leader++ {
			if touched[leader] {
				continue
			}

			var cycle []int

			p := leader
			for {
				cycle = append(cycle, p)
				touched[p] = true
				p = rot(p, d)

				if p == leader {
					break
				}
			}

			cycles = append(cycles, cycle)
		}

		tables[d] = cycles
	}

	return tables
}
