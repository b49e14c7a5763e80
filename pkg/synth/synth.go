// Package synth produces bounded random values for the simulated dashboard data.
package synth

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// Source is a goroutine-safe random source
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a deterministic source, mainly for tests
func New(seed uint64) *Source {
	return &Source{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewRandom creates a source seeded from the clock
func NewRandom() *Source {
	return New(uint64(time.Now().UnixNano()))
}

// Float64 returns a value in [0, 1)
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Uniform returns a value in [min, max]
func (s *Source) Uniform(min, max float64) float64 {
	return min + (max-min)*s.Float64()
}

// UniformRound returns Uniform(min, max) rounded to the given decimal places
func (s *Source) UniformRound(min, max float64, places int) float64 {
	return Round(s.Uniform(min, max), places)
}

// IntRange returns an integer in [min, max], both inclusive
func (s *Source) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.IntN(max-min+1)
}

// Chance reports true with the given probability
func (s *Source) Chance(p float64) bool {
	return s.Float64() < p
}

// Pick returns a random element of options
func Pick[T any](s *Source, options []T) T {
	return options[s.IntRange(0, len(options)-1)]
}

// Round rounds half away from zero to the given decimal places
func Round(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
