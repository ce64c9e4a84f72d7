package generation

import (
	"math/rand"
	"time"
)

// RandomSource is the only randomness generation consumes.
// It is passed explicitly to every call and read as a single sequential stream.
type RandomSource interface {
	// Range returns a uniform integer in [min, max)
	Range(min, max int) int
	// SliceIndex returns a uniform index into a sequence of length n, or false if n is 0
	SliceIndex(n int) (int, bool)
}

// Random is a RandomSource backed by math/rand
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a seeded random source for reproducible levels
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomFromTime creates a random source seeded from the clock
func NewRandomFromTime() *Random {
	return NewRandom(time.Now().UnixNano())
}

// Range returns a uniform integer in [min, max). An empty range is a caller bug and panics.
func (r *Random) Range(min, max int) int {
	if max <= min {
		panic("generation: empty random range")
	}
	return min + r.rng.Intn(max-min)
}

// SliceIndex returns a uniform index in [0, n)
func (r *Random) SliceIndex(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	return r.rng.Intn(n), true
}

// RandomEntry picks one element of items uniformly
func RandomEntry[T any](rng RandomSource, items []T) (T, bool) {
	idx, ok := rng.SliceIndex(len(items))
	if !ok {
		var zero T
		return zero, false
	}
	return items[idx], true
}
