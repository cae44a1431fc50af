package advisor

import (
	"math/rand"
	"time"
)

// Rand is the random source consulted by strategies. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a deterministic source for seed, or a time-seeded one when
// seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func pick[T any](rng Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
