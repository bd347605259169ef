// Package life implements age progression and location selection for
// the life simulation: the per-year event quota, the age counter, and
// the age-banded random location policy.
package life

import (
	"math/rand/v2"
	"sync"
)

// Dice is the single source of randomness for the game. Handlers share
// one Dice across requests, so draws are serialized with a mutex.
// Tests construct a seeded Dice for reproducible draws.
type Dice struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewDice returns a Dice with an unpredictable seed.
func NewDice() *Dice {
	return &Dice{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededDice returns a Dice with a fixed seed for tests.
func NewSeededDice(seed uint64) *Dice {
	return &Dice{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (d *Dice) float64() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Float64()
}

// YearQuota draws the number of events that make up one in-game year,
// uniformly from {2, 3}.
func (d *Dice) YearQuota() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return 2 + d.rng.IntN(2)
}
