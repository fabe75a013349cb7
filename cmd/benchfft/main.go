// Command benchfft times FFTSplit and RealFFTSplit across a list of
// sizes and reports nanoseconds per call.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"strings"

	"github.com/cwbudde/splitfft"
	"github.com/cwbudde/splitfft/internal/cpu"
)

func main() {
	var (
		sizeList = flag.String("sizes", "1024,4096,16384,65536", "comma-separated complex FFT sizes (powers of two)")
		iters    = flag.Int("iters", 50, "benchmark iterations")
		warmup   = flag.Int("warmup", 5, "warmup iterations")
		mode     = flag.String("mode", "forward", "benchmark mode: forward, inverse, roundtrip, all")
		seed     = flag.Int64("seed", 1, "rng seed")
		real     = flag.Bool("real", false, "also benchmark the real-FFT adapter at half each size")
	)
	flag.Parse()

	splitfft.Initialize()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	features := splitfft.Features()
	fmt.Printf("cpu: %s maxLaneWidth=%d\n", features.Architecture, features.MaxLaneWidth())
	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)
	fmt.Printf("%8s  %10s  %12s  %12s\n", "size", "kind", "mode", "ns/op")

	for _, n := range sizes {
		for _, runMode := range resolveModes(*mode) {
			nsPerOp, err := benchComplex(rnd, n, *iters, *warmup, runMode)
			if err != nil {
				fmt.Printf("%8d  %10s  %12s  error: %v\n", n, "complex", runMode, err)
				continue
			}

			fmt.Printf("%8d  %10s  %12s  %12.1f\n", n, "complex", runMode, nsPerOp)

			if *real {
				nsPerOp, err := benchReal(rnd, n, *iters, *warmup, runMode)
				if err != nil {
					fmt.Printf("%8d  %10s  %12s  error: %v\n", n, "real", runMode, err)
					continue
				}

				fmt.Printf("%8d  %10s  %12s  %12.1f\n", n, "real", runMode, nsPerOp)
			}
		}
	}
}

func benchComplex(rnd *rand.Rand, n, iters, warmup int, mode string) (float64, error) {
	r := randomBuffer(rnd, n)
	i := randomBuffer(rnd, n)
	scratchR := make([]float64, n)
	scratchI := make([]float64, n)

	run := func() error {
		copy(scratchR, r)
		copy(scratchI, i)

		switch mode {
		case "inverse":
			return splitfft.FFTSplit(scratchR, scratchI, false, 1.0)
		case "roundtrip":
			if err := splitfft.FFTSplit(scratchR, scratchI, true, 1.0); err != nil {
				return err
			}

			return splitfft.FFTSplit(scratchR, scratchI, false, 1.0)
		default:
			return splitfft.FFTSplit(scratchR, scratchI, true, 1.0)
		}
	}

	return timeRun(run, iters, warmup)
}

func benchReal(rnd *rand.Rand, n, iters, warmup int, mode string) (float64, error) {
	half := n / 2
	if half < 8 {
		return 0, splitfft.ErrTooShort
	}

	re := randomBuffer(rnd, half)
	im := randomBuffer(rnd, half)
	scratchRe := make([]float64, half)
	scratchIm := make([]float64, half)

	run := func() error {
		copy(scratchRe, re)
		copy(scratchIm, im)

		switch mode {
		case "inverse":
			return splitfft.RealFFTSplit(scratchRe, scratchIm, false, 1.0)
		case "roundtrip":
			if err := splitfft.RealFFTSplit(scratchRe, scratchIm, true, 1.0); err != nil {
				return err
			}

			return splitfft.RealFFTSplit(scratchRe, scratchIm, false, 1.0)
		default:
			return splitfft.RealFFTSplit(scratchRe, scratchIm, true, 1.0)
		}
	}

	return timeRun(run, iters, warmup)
}

func timeRun(run func() error, iters, warmup int) (float64, error) {
	for i := 0; i < warmup; i++ {
		if err := run(); err != nil {
			return 0, err
		}
	}

	runtime.GC()

	start := cpu.ReadCycleCounter()

	for i := 0; i < iters; i++ {
		if err := run(); err != nil {
			return 0, err
		}
	}

	elapsedNs := cpu.CyclesToNanoseconds(cpu.CyclesSince(start))

	return float64(elapsedNs) / float64(iters), nil
}

func randomBuffer(rnd *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for k := range v {
		v[k] = rnd.Float64()*2 - 1
	}

	return v
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{"forward", "inverse", "roundtrip"}
	case "inverse", "roundtrip", "forward":
		return []string{mode}
	default:
		return []string{"forward"}
	}
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
