// Package entropy provides the deterministic randomness source and the
// small numeric helpers shared across the simulation. Every stochastic
// decision flows through a seeded Source so a run can be replayed exactly.
package entropy

import "sync"

// lcg parameters; the generator must reproduce this exact sequence so
// saved worlds regenerate identical deposits and terrain.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Source is a seeded linear congruential generator yielding floats in
// [0, 1). Safe for concurrent use.
type Source struct {
	mu      sync.Mutex
	seed    int64
	current int64
}

// NewSource creates a Source from a seed.
func NewSource(seed int64) *Source {
	return &Source{seed: seed, current: seed}
}

// Next returns the next value in [0, 1).
func (s *Source) Next() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = (s.current*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(s.current) / float64(lcgModulus)
}

// NextInt returns a value in [min, max).
func (s *Source) NextInt(min, max int) int {
	return int(s.Next()*float64(max-min)) + min
}

// NextFloat returns a value in [min, max).
func (s *Source) NextFloat(min, max float64) float64 {
	return s.Next()*(max-min) + min
}

// NextBool returns true with the given probability.
func (s *Source) NextBool(probability float64) bool {
	return s.Next() < probability
}

// Reset rewinds the source to its initial seed.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.seed
}

// Shuffle permutes a slice in place using Fisher-Yates.
func Shuffle[T any](s *Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := s.NextInt(0, i+1)
		items[i], items[j] = items[j], items[i]
	}
}

// Weighted pairs an item with its selection weight.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// WeightedChoice draws one item with probability proportional to weight.
// Panics on an empty slice; callers own that precondition.
func WeightedChoice[T any](s *Source, items []Weighted[T]) T {
	if len(items) == 0 {
		panic("entropy: weighted choice from empty slice")
	}

	total := 0.0
	for _, it := range items {
		total += it.Weight
	}

	r := s.Next() * total
	for _, it := range items {
		r -= it.Weight
		if r <= 0 {
			return it.Item
		}
	}
	return items[len(items)-1].Item
}
