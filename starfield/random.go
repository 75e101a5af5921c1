package starfield

import (
	"math/rand"
	"time"
)

// Source is the randomness consumed while generating stars.
// `*rand.Rand` satisfies it.
type Source interface {
	// Uniform real in [0, 1)
	Float64() float64
	// Uniform integer in [0, n)
	Intn(n int) int
}

func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewClockSource is used when no seed was given, output differs between runs.
func NewClockSource() (Source, int64) {
	seed := time.Now().UnixNano()
	return NewSeededSource(seed), seed
}

// randRange returns an integer in [low, high).
func randRange(source Source, low int, high int) int {
	return low + source.Intn(high-low)
}

// FixedSource replays fixed values so that a generated program is known in advance.
// Both sequences wrap around once exhausted.
// Integers are reduced modulo the requested bound.
type FixedSource struct {
	Floats []float64
	Ints   []int

	floatIdx int
	intIdx   int
}

func NewFixedSource(floats []float64, ints []int) *FixedSource {
	return &FixedSource{
		Floats:   floats,
		Ints:     ints,
		floatIdx: 0,
		intIdx:   0,
	}
}

func (self *FixedSource) Float64() float64 {
	if len(self.Floats) == 0 {
		return 0
	}

	value := self.Floats[self.floatIdx%len(self.Floats)]
	self.floatIdx++
	return value
}

func (self *FixedSource) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}

	if len(self.Ints) == 0 {
		return 0
	}

	value := self.Ints[self.intIdx%len(self.Ints)] % n
	if value < 0 {
		value += n
	}
	self.intIdx++
	return value
}
