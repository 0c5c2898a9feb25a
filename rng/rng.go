// Package rng provides the random source used by level generation.
package rng

import (
	"math/rand"
	"time"
)

// Source draws the values the generator needs.
type Source interface {
	// Uniform returns a value between min and max. Reversed bounds are
	// allowed and interpolate the same way.
	Uniform(min, max float64) float64
	// RangedInt returns a value in [min, max], biased toward low values.
	RangedInt(min, max int) int
	// Chance reports true with probability percent/100.
	Chance(percent float64) bool
}

// Reseeding re-seeds its generator before every draw from the clock mixed
// with the previous seed.
type Reseeding struct {
	clock func() int64
	seed  int64
	r     *rand.Rand
}

// NewReseeding returns a Reseeding source driven by the wall clock.
func NewReseeding() *Reseeding {
	return NewReseedingWithClock(func() int64 { return time.Now().UnixNano() })
}

// NewReseedingWithClock returns a Reseeding source driven by clock.
func NewReseedingWithClock(clock func() int64) *Reseeding {
	seed := clock()
	return &Reseeding{clock: clock, seed: seed, r: rand.New(rand.NewSource(seed))}
}

func (s *Reseeding) reseed() {
	next := s.clock() * s.seed / 7
	if next == 0 {
		next = s.clock() | 1
	}
	s.seed = next
	s.r.Seed(next)
}

func (s *Reseeding) unit() float64 {
	s.reseed()
	return s.r.Float64()
}

func (s *Reseeding) intn(n int) int {
	s.reseed()
	return s.r.Intn(n)
}

func (s *Reseeding) Uniform(min, max float64) float64 {
	return lerp(min, max, s.unit())
}

func (s *Reseeding) RangedInt(min, max int) int {
	return foldRange(min, max, s.intn)
}

func (s *Reseeding) Chance(percent float64) bool {
	return chance(percent, s.unit())
}

// Stable is a single seeded generator advanced normally.
type Stable struct {
	r *rand.Rand
}

// NewStable returns a reproducible source for seed.
func NewStable(seed int64) *Stable {
	return &Stable{r: rand.New(rand.NewSource(seed))}
}

func (s *Stable) Uniform(min, max float64) float64 {
	return lerp(min, max, s.r.Float64())
}

func (s *Stable) RangedInt(min, max int) int {
	return foldRange(min, max, s.r.Intn)
}

func (s *Stable) Chance(percent float64) bool {
	return chance(percent, s.r.Float64())
}

func lerp(min, max, t float64) float64 {
	return min + (max-min)*t
}

// foldRange draws from [0, max*100] and folds it into [min, max].
func foldRange(min, max int, intn func(int) int) int {
	span := max + 1 - min
	if span <= 0 {
		return min
	}
	wide := max*100 + 1
	if wide <= 0 {
		wide = 1
	}
	return intn(wide)%span + min
}

func chance(percent, u float64) bool {
	return u > 1-percent*0.01
}
