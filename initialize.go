package splitfft

import "github.com/cwbudde/splitfft/internal/tables"

var (
	tbl   *tables.Tables
	ready bool
)

// Initialize builds every permutation and twiddle table up to
// MaxTableDepth. It must be called before any transform entry point;
// further calls are idempotent no-ops.
//
// Initialize is not safe to call concurrently with itself: callers
// that start goroutines which transform must call Initialize from a
// single goroutine first and happens-before that with the goroutines
// it starts. Once built, the tables are immutable and every transform
// entry point may be called concurrently from any number of
// goroutines, provided their buffers don't overlap.
func Initialize() {
	if ready {
		return
	}

	tbl = tables.Build(MaxTableDepth)
	ready = true
}
