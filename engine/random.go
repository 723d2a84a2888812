package engine

import "math/rand/v2"

// BoolSource supplies the random cell states used by Seed
type BoolSource interface {
	Bool() bool
}

// RandSource is a deterministic BoolSource backed by a PCG generator
type RandSource struct {
	r *rand.Rand
}

// NewRandSource creates a RandSource. Equal seeds yield equal sequences.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns true or false with equal probability
func (s *RandSource) Bool() bool {
	return s.r.IntN(2) == 1
}
