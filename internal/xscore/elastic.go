package xscore

import (
	"protogonos/internal/gridsearch"
	"protogonos/internal/model"
)

// Elastic0K is the pure 0 K elastic lookup (spec §4.7, §4 component 8):
// a plain linear interpolation on the nuclide's 0 K elastic grid, using
// the same clamping and tie-bumping rule as the tabulated-branch grid
// search (spec §4.2). Resonance-scattering sampling (out of this core's
// scope, per spec §1) is the intended external consumer; the core exposes
// it as a standalone helper rather than burying it inside NuclideXS.
func Elastic0K(grid, values []float64, energy float64) float64 {
	if len(grid) == 0 {
		return 0
	}
	if len(grid) == 1 {
		return values[0]
	}

	i := gridsearch.BracketAscending(grid, energy)
	if grid[i-1] == grid[i] && i < len(grid)-1 {
		i++
	}
	f := 0.0
	if grid[i] != grid[i-1] {
		f = (energy - grid[i-1]) / (grid[i] - grid[i-1])
	}
	return (1-f)*values[i-1] + f*values[i]
}

// freeAtomElasticAt returns the cached nuclide's free-atom elastic cross
// section at the call's (E, T), not at 0 K (spec §4.7 second paragraph,
// informally named "Elastic0KOrCached" there). On the tabulated branch it
// is the temperature-dependent elastic reaction interpolated at the
// cached (IndexGrid, InterpFactor); on the multipole branch (IndexTemp <=
// 0 signals this) it is reconstructed as total - absorption, since the
// multipole kernel does not keep a separate elastic table.
func freeAtomElasticAt(entry *model.MicroCacheEntry, elasticTable []float64) float64 {
	if entry.IndexTemp <= 0 {
		return entry.Total - entry.Absorption
	}
	return interpolateAt(elasticTable, entry.IndexGrid, entry.InterpFactor)
}

// interpolateAt linearly interpolates table at 1-based grid index i with
// fraction f: (1-f)*table[i] + f*table[i+1].
func interpolateAt(table []float64, i int, f float64) float64 {
	if i < 1 || i >= len(table) {
		if i >= 1 && i-1 < len(table) {
			return table[i-1]
		}
		return 0
	}
	return (1-f)*table[i-1] + f*table[i]
}
