package model

import "protogonos/internal/xsconst"

// MicroCacheEntry is one nuclide's process-wide mutable cache slot (spec
// §3). It is owned, for the duration of one particle history, by whichever
// worker is advancing that particle; nothing about it is safe to share
// across particles advanced concurrently.
type MicroCacheEntry struct {
	LastE      float64
	LastSqrtKT float64

	IndexSab int
	SabFrac  float64

	Total      float64
	Absorption float64
	Fission    float64
	NuFission  float64

	// Elastic is lazy: xsconst.CacheInvalid until SabEval, UrrEval, or
	// resonance-scattering sampling materializes it.
	Elastic float64

	Thermal        float64
	ThermalElastic float64

	IndexTemp    int
	IndexGrid    int
	InterpFactor float64
	IndexTempSab int
	UsePTable    bool

	// Depletion holds the six depletion-reaction microscopic values in
	// the fixed order xsconst.DepletionRx names.
	Depletion [6]float64
}

// Valid reports whether this cache entry already holds the result for the
// given (E, sqrtkT, indexSab, sabFrac) call signature (spec §3 cache
// invariant, §8 idempotence property).
func (c *MicroCacheEntry) Valid(energy, sqrtKT float64, indexSab int, sabFrac float64) bool {
	return c.LastE == energy &&
		c.LastSqrtKT == sqrtKT &&
		c.IndexSab == indexSab &&
		c.SabFrac == sabFrac
}

// Reset clears the fields NuclideXS recomputes on every call, leaving the
// call-signature fields (LastE, LastSqrtKT) for the caller to set once the
// recompute completes.
func (c *MicroCacheEntry) Reset() {
	c.Elastic = xsconst.CacheInvalid
	c.Thermal = 0
	c.ThermalElastic = 0
	c.IndexSab = xsconst.NoSabTable
	c.SabFrac = 0
	c.UsePTable = false
}

// MaterialCacheEntry holds one particle's macroscopic cross sections
// (spec §3, §4.1).
type MaterialCacheEntry struct {
	Total      float64
	Absorption float64
	Fission    float64
	NuFission  float64
}

// Zero resets all four macroscopic channels (spec §4.1 step 1).
func (m *MaterialCacheEntry) Zero() {
	*m = MaterialCacheEntry{}
}
