package model

// RNGStream is the random-number-generator capability the core consumes
// (spec §6). The core never constructs its own stream; it only switches
// the active stream and draws deterministic future samples from it.
type RNGStream interface {
	// SetStream switches the active stream to id, returning the
	// previously active stream id so the caller can restore it.
	SetStream(id int) int

	// FuturePRN draws a sample in [0, 1) deterministic in (active stream,
	// key): the same stream and key always reproduce the same value.
	FuturePRN(key int64) float64

	// Sample draws the next value from the active stream's ordinary
	// sequence, used by the tabulated-branch stochastic temperature
	// interpolation (spec §4.2).
	Sample() float64
}

// Particle is the minimal view of a simulated neutron the core needs
// (spec §6): its material slot, current energy and sqrt(kT), and access
// to its thread's random-number state.
type Particle struct {
	MaterialIndex int
	Energy        float64
	SqrtKT        float64
	RNG           RNGStream
}
