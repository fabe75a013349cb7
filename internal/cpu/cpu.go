// Package cpu reports the CPU features relevant to choosing a lane
// width for the butterfly stage loop. The engine itself never branches
// on these at runtime (stage width is chosen from the stage index, per
// spec), but the benchmark harness and diagnostics surface them the
// way algo-fft's internal/cpu does.
package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the SIMD-relevant capabilities of the running
// process's CPU.
type Features struct {
	Architecture string
	HasAVX2      bool
	HasAVX512    bool
	HasSSE2      bool
	HasNEON      bool
}

// MaxLaneWidth returns the widest lane width (in float64 elements) the
// detected features could in principle back: 8 with AVX2/AVX512, 2
// with SSE2/NEON, 1 otherwise. This is informational only.
func (f Features) MaxLaneWidth() int {
	switch {
	case f.HasAVX2, f.HasAVX512:
		return 8
	case f.HasSSE2, f.HasNEON:
		return 2
	default:
		return 1
	}
}

// Detect reports the available CPU features for the current process.
func Detect() Features {
	return Features{
		Architecture: runtime.GOARCH,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasSSE2:      cpu.X86.HasSSE2,
		HasNEON:      cpu.ARM64.HasASIMD,
	}
}
