package skipnode

import (
	"math"
	"testing"
)

func TestLevelDistribution(t *testing.T) {
	const maxLevel = 31
	numSamples := 1000000
	counts := make(map[int]int)

	rng := NewSeededRNG(1)
	for i := 0; i < numSamples; i++ {
		counts[rng.Level(maxLevel)]++
	}

	// Each level should hold roughly half the nodes of the level below.
	for i := 0; i < maxLevel; i++ {
		count1 := counts[i]
		count2 := counts[i+1]

		if count1 > 100 {
			ratio := float64(count2) / float64(count1)
			if math.Abs(ratio-0.5) > 0.1 {
				t.Errorf("Expected ratio between level %d and %d to be around 0.5, but got %.2f", i, i+1, ratio)
			}
		}
	}
}

func TestLevelCap(t *testing.T) {
	rng := NewSeededRNG(7)
	for i := 0; i < 100000; i++ {
		if level := rng.Level(3); level < 0 || level > 3 {
			t.Fatalf("expected level in [0,3], got %d", level)
		}
	}
}

func TestSeededRNGIsDeterministic(t *testing.T) {
	a := NewSeededRNG(99)
	b := NewSeededRNG(99)
	for i := 0; i < 1000; i++ {
		if a.Level(31) != b.Level(31) {
			t.Fatalf("expected identical sequences from the same seed")
		}
	}
}
