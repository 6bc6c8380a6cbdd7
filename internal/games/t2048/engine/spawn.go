package engine

import "math/rand"

// DefaultProbFour is the chance a spawned tile is a 4 rather than a 2.
const DefaultProbFour = 0.10

// Spawner chooses where a new tile goes and what value it gets.
// empty is never empty when Pick is called.
type Spawner interface {
	Pick(empty []Position) (Position, int)
}

// RandomSpawner picks a uniformly random empty cell and spawns a 4 with
// probability ProbFour, otherwise a 2. It owns one RNG for its lifetime.
type RandomSpawner struct {
	rng      *rand.Rand
	probFour float64
}

// NewRandomSpawner creates a spawner drawing from rng.
func NewRandomSpawner(rng *rand.Rand, probFour float64) *RandomSpawner {
	s := &RandomSpawner{rng: rng}
	s.SetProbFour(probFour)
	return s
}

// NewSeededSpawner creates a spawner with its own RNG seeded once from seed.
func NewSeededSpawner(seed int64, probFour float64) *RandomSpawner {
	return NewRandomSpawner(rand.New(rand.NewSource(seed)), probFour)
}

// SetProbFour changes the 4-tile probability, clamped to [0, 1].
func (s *RandomSpawner) SetProbFour(p float64) {
	switch {
	case p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	s.probFour = p
}

// ProbFour returns the current 4-tile probability.
func (s *RandomSpawner) ProbFour() float64 {
	return s.probFour
}

// Pick implements Spawner.
func (s *RandomSpawner) Pick(empty []Position) (Position, int) {
	cell := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < s.probFour {
		value = 4
	}
	return cell, value
}

// FixedSpawner replays a scripted sequence of values into the first empty
// cell. Useful for deterministic tests and replays.
type FixedSpawner struct {
	Values []int
	next   int
}

// Pick implements Spawner. Once Values is exhausted it spawns 2s.
func (s *FixedSpawner) Pick(empty []Position) (Position, int) {
	value := 2
	if s.next < len(s.Values) {
		value = s.Values[s.next]
		s.next++
	}
	return empty[0], value
}
