package main

import (
	"math/rand"
	"time"
)

const (
	minValue = -50
	maxValue = 50
)

// IntSource draws integers from the closed range [low, high].
type IntSource interface {
	NextInt(low, high int) int
}

type mathRandSource struct {
	r *rand.Rand
}

// newRandSource returns a source seeded with seed, or with the clock when seed is 0.
func newRandSource(seed int64) *mathRandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathRandSource{r: rand.New(rand.NewSource(seed))}
}

func (s *mathRandSource) NextInt(low, high int) int {
	return s.r.Intn(high-low+1) + low
}
