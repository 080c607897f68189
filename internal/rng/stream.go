// Package rng provides the default random-number-stream implementation
// the cross-section core consumes (spec §6). The core treats the RNG as
// an external collaborator behind the model.RNGStream interface; this
// package is the one concrete implementation this module ships, the same
// way the teacher repo threads an explicit *rand.Rand through
// internal/evo's Selector implementations rather than reaching for
// math/rand's global functions.
package rng

import (
	"math/rand"
	"sync"
)

// TrackingStream is a model.RNGStream backed by one *rand.Rand per
// logical stream id, keyed by a base seed. Switching streams never
// perturbs another stream's sequence, and FuturePRN draws are
// deterministic given (active stream id, key): that determinism is what
// gives two UrrEval calls for the same nuclide at different temperatures
// the same band draw (spec §4.4, §8 URR temperature correlation).
type TrackingStream struct {
	mu       sync.Mutex
	seed     int64
	active   int
	sequence map[int]*rand.Rand
}

// NewTrackingStream builds a TrackingStream seeded from seed. The
// tracking stream (xsconst.StreamTracking) is active initially.
func NewTrackingStream(seed int64) *TrackingStream {
	return &TrackingStream{
		seed:     seed,
		active:   defaultStreamID,
		sequence: make(map[int]*rand.Rand),
	}
}

const defaultStreamID = 1 // xsconst.StreamTracking, duplicated to avoid an import cycle

// SetStream switches the active stream, returning the previous one.
func (s *TrackingStream) SetStream(id int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.active
	s.active = id
	return prev
}

// Sample draws the next value from the active stream's ordinary sequence.
func (s *TrackingStream) Sample() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.streamLocked(s.active).Float64()
}

// FuturePRN draws a value deterministic in (active stream, key): the
// active stream's per-key sub-sequence is reseeded from (base seed,
// stream id, key) on every call, so repeated calls with the same key on
// the same stream always return the same value regardless of how many
// other draws happened in between.
func (s *TrackingStream) FuturePRN(key int64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := rand.NewSource(mixSeed(s.seed, s.active, key))
	return rand.New(src).Float64()
}

func (s *TrackingStream) streamLocked(id int) *rand.Rand {
	r, ok := s.sequence[id]
	if !ok {
		r = rand.New(rand.NewSource(mixSeed(s.seed, id, 0)))
		s.sequence[id] = r
	}
	return r
}

// mixSeed folds a base seed, a stream id, and a key into one int64 seed.
// The exact mixing constants are arbitrary; the only contract is
// determinism and low collision probability across (id, key) pairs.
func mixSeed(seed int64, id int, key int64) int64 {
	h := uint64(seed)
	h ^= uint64(id) * 0x9E3779B97F4A7C15
	h ^= uint64(key) * 0xC2B2AE3D27D4EB4F
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	return int64(h)
}
