package ismcts

import (
	"math/rand"
	"time"
)

// SeedGeneratorFn produces the seed for each worker's thread-local RNG.
// By default it is time-based, giving every worker an independent
// stream. It is deliberately kept off Handler's API surface and only
// overridable here, for tests that need determinism (construct
// degenerate games instead of seeding for determinism where possible).
var SeedGeneratorFn = func() int64 {
	return time.Now().UnixNano()
}

// SetSeedGeneratorFn overrides SeedGeneratorFn.
func SetSeedGeneratorFn(f func() int64) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

func newWorkerRand(workerID int) *rand.Rand {
	return rand.New(rand.NewSource(SeedGeneratorFn() ^ int64(workerID)<<32))
}
