// Package bees - RNG construction shared by the solver.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs on every platform.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe; the solver is
// single-threaded and owns its RNG exclusively.
package bees

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when Config.Seed == 0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
