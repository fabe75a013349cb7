package splitfft

import "github.com/cwbudde/splitfft/internal/cpu"

// Features reports the CPU capabilities detected for the running
// process. It's diagnostic only: the butterfly kernel's lane width is
// chosen from the stage index, not from these flags.
func Features() cpu.Features {
	return cpu.Detect()
}
