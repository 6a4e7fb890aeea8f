package mc

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === StreamKey ===

// StreamKey uniquely identifies a reproducible valuation run.
// Two runs with the same StreamKey and identical model/claim configuration
// MUST produce bit-for-bit identical results.
type StreamKey int64

// NewStreamKey creates a StreamKey from a seed value.
func NewStreamKey(seed int64) StreamKey {
	return StreamKey(seed)
}

// === Stream ===

// Stream is a resumable pseudorandom variate source. One Stream is threaded
// through all trials of a sequential run; the parallel driver derives an
// isolated Stream per trial instead (see ForTrial).
//
// Thread-safety: NOT thread-safe. Must be consumed from a single goroutine.
type Stream struct {
	key StreamKey
	rng *rand.Rand
}

// NewStream creates a Stream seeded from the given key.
func NewStream(key StreamKey) *Stream {
	return &Stream{
		key: key,
		rng: rand.New(rand.NewSource(int64(key))),
	}
}

// Normal draws a standard normal variate, advancing the stream state.
func (s *Stream) Normal() float64 {
	return s.rng.NormFloat64()
}

// Uniform draws a variate uniform on [0, 1), advancing the stream state.
func (s *Stream) Uniform() float64 {
	return s.rng.Float64()
}

// Key returns the StreamKey this Stream was created from.
func (s *Stream) Key() StreamKey {
	return s.key
}

// ForTrial returns a fresh Stream for trial n, derived deterministically
// from this Stream's key:
//
//	derivedSeed = key XOR fnv1a64("trial_<n>")
//
// Derived streams are mutually isolated: consuming one never perturbs
// another, which keeps parallel trials decorrelated and reproducible
// regardless of scheduling order.
func (s *Stream) ForTrial(n int) *Stream {
	derived := int64(s.key) ^ fnv1a64(trialName(n))
	return NewStream(StreamKey(derived))
}

// trialName returns the derivation label for trial n.
func trialName(n int) string {
	return fmt.Sprintf("trial_%d", n)
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
