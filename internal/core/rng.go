package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// The process-wide source used by sims built without their own. It is meant
// for sequential use from a single goroutine.
var (
	sharedPCG = rand.NewPCG(1, 0)
	shared    = rand.New(sharedPCG)
)

// Random returns the process-wide random source.
func Random() *rand.Rand { return shared }

// Seed reseeds the process-wide random source in place so sims already
// holding it observe the new sequence.
func Seed(seed int64) {
	sharedPCG.Seed(uint64(seed), 0)
}

// OrShared returns r, or the process-wide source when r is nil.
func OrShared(r *rand.Rand) *rand.Rand {
	if r == nil {
		return Random()
	}
	return r
}

// Pick returns a uniformly chosen element of options. options must not be
// empty.
func Pick(r *rand.Rand, options []int) int {
	return options[r.IntN(len(options))]
}

// FillBinary fills the buffer with Alive/Dead values using the RNG.
func FillBinary(r *rand.Rand, buf []CellState) {
	for i := range buf {
		if r.IntN(2) == 1 {
			buf[i] = Alive
			continue
		}
		buf[i] = Dead
	}
}
