// Package infomap - RNG utilities for seeded multi-trial restarts.
//
// Determinism contract: the same seed produces the same per-trial
// streams, hence the same shuffles, hence the same partition. Seed 0 is
// replaced by a clock-derived seed and is explicitly non-deterministic.

package infomap

import (
	"math/rand"
	"time"
)

// effectiveSeed applies the seed-0 policy.
func effectiveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}

	return seed
}

// trialRNG returns an independent deterministic stream for one trial,
// derived from the base seed and the trial index.
func trialRNG(seed int64, trial uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, trial)))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed using a SplitMix64-style finalizer, so consecutive trial
// indices yield uncorrelated streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// shuffleInts performs an in-place Fisher-Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInts(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
