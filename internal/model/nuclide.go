// Package model holds the immutable-after-load nuclear data entities and
// the mutable per-particle cache entries the cross-section core reads and
// writes (spec §3). These types carry only small helpers (cache validity
// and reset, the logarithmic bucket map); the algorithms that interpret
// them live in internal/xscore.
package model

import "math"

// ReactionRecord is a single threshold-indexed cross-section or rate
// table for one reaction channel at one temperature. Value is expressed
// on the nuclide's energy grid starting at Threshold: Value[0] corresponds
// to grid index Threshold.
type ReactionRecord struct {
	MT        int
	Threshold int // 1-based grid index of the first entry in Value
	Value     []float64
}

// TemperatureTable holds every per-temperature quantity NuclideXS needs:
// the energy grid itself, the shared-bucket-to-local-range map, and the
// tabulated reaction channels.
type TemperatureTable struct {
	Grid []float64 // strictly ascending, 1-based addressing in spec terms

	// GridIndex maps a shared logarithmic bucket i (see Nuclide.LogBucket)
	// to the [low, high] range of this table's Grid intervals that the
	// bucket overlaps, where interval j spans Grid[j]..Grid[j+1].
	// GridIndex[i] = [low, high], 1-based, inclusive; the grid points
	// searched are low..high+1.
	GridIndex [][2]int

	Total      []float64
	Absorption []float64
	Fission    []float64
	NuFission  []float64
	Elastic    []float64 // free-atom elastic, same grid as Total (spec §4.7)
	Depletion  [6]*ReactionRecord // indexed like xsconst.DepletionRx
	URR        *URRTable          // nil if this temperature has no URR data
}

// Nuclide is immutable after load.
type Nuclide struct {
	Name string

	KTs    []float64          // ascending temperatures, in eV (k_B*T)
	Tables []TemperatureTable // Tables[i] corresponds to KTs[i]

	LogSpacing float64 // Delta_log used by the shared logarithmic bucket map
	EnergyMin  float64 // E_min used by the shared logarithmic bucket map

	Multipole *MultipoleArray // nil if this nuclide has no multipole data

	Elastic0KGrid []float64
	Elastic0KXS   []float64

	Fissionable bool
	Nu          func(energy float64, mode NuMode) float64
}

// NuMode selects which nu(E) quantity Nu should return.
type NuMode int

const (
	NuTotalEmission NuMode = iota
	NuPrompt
	NuDelayed
)

// LogBucket computes the shared logarithmic lattice bucket index for
// energy E (spec §4.1 step 3): i_grid = floor(log(E/E_min) / Delta_log).
// The result is 0-based; callers consult Tables[t].GridIndex at this
// index directly.
func (n *Nuclide) LogBucket(energy float64) int {
	if energy <= n.EnergyMin || n.LogSpacing <= 0 {
		return 0
	}
	ratio := energy / n.EnergyMin
	return int(math.Floor(math.Log(ratio) / n.LogSpacing))
}
