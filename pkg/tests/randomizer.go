package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
	}
}

// Between returns a float in [min, max).
func (r Randomizer) Between(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Pick returns a random element of items.
func Pick[T any](r Randomizer, items ...T) T {
	return items[r.Intn(len(items))]
}
