package skipnode

import (
	"math/bits"
	"time"
)

const defaultSeed = uint64(0xdeadbeefcafebabe)

// RNG is a xorshift generator for drawing node levels with the usual
// geometric distribution (each level half as likely as the one below). The
// engine itself never draws levels; this is a convenience for containers
// that do not bring their own level policy. Not safe for concurrent use,
// matching the engine's exclusive-access model.
type RNG struct {
	seed uint64
}

// NewRNG returns a time-seeded level source.
func NewRNG() *RNG {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return &RNG{seed: seed}
}

// NewSeededRNG returns a level source with a fixed seed, for reproducible
// structures in tests and benchmarks.
func NewSeededRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = defaultSeed
	}
	return &RNG{seed: seed}
}

func (r *RNG) next() uint64 {
	x := r.seed
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	if x == 0 {
		x = defaultSeed
	}
	r.seed = x
	return x * 2685821657736338717
}

// Level draws a zero-based node level in [0, maxLevel]. Counting trailing
// zero bits of a uniform draw gives the geometric distribution directly.
func (r *RNG) Level(maxLevel int) int {
	level := bits.TrailingZeros64(r.next())
	if level > maxLevel {
		return maxLevel
	}
	return level
}
