package maze

import (
	"math/rand"
	"time"
)

// Random is the source of randomness consumed by generators.
// *rand.Rand satisfies it. Implementations need not be goroutine-safe;
// a generator uses its source from a single goroutine per call.
type Random interface {
	// Intn returns a uniform integer in [0, n). n is always positive.
	Intn(n int) int
}

// NewRandom returns a deterministic source for the given seed.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// orDefault falls back to a time-seeded source when r is nil.
func orDefault(r Random) Random {
	if r == nil {
		return NewRandom(time.Now().UnixNano())
	}
	return r
}
