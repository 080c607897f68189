package xscore

import (
	"math"

	"protogonos/internal/gridsearch"
	"protogonos/internal/model"
	"protogonos/internal/xsconst"
)

// SabEval evaluates the S(alpha,beta) thermal inelastic and elastic cross
// sections and rewrites the host nuclide's cached total/elastic (spec
// §4.3). Callers must have already run NuclideXS for this (energy,
// sqrtKT) so cache.Total/Absorption/IndexTemp/IndexGrid/InterpFactor
// reflect the host nuclide's free-atom result.
func (e *Evaluator) SabEval(nuc *model.Nuclide, sab *model.SabTable, cache *model.MicroCacheEntry, energy, sqrtKT float64, indexSab int, sabFrac float64, rng model.RNGStream) {
	cache.IndexSab = indexSab

	iTempSab := e.selectSabTemperature(sab, sqrtKT, rng)
	table := sab.Tables[iTempSab-1]

	inelastic := sabInelastic(table.InelasticGrid, table.InelasticXS, energy)
	elasticSab := sabElastic(table, energy)

	elasticFree := freeAtomElasticAt(cache, nuclideElasticTable(nuc, cache.IndexTemp))

	cache.Thermal = sabFrac * (elasticSab + inelastic)
	cache.ThermalElastic = sabFrac * elasticSab
	cache.Total += cache.Thermal - sabFrac*elasticFree
	cache.Elastic = cache.Thermal + (1-sabFrac)*elasticFree

	cache.IndexTempSab = iTempSab
	cache.SabFrac = sabFrac
}

func nuclideElasticTable(nuc *model.Nuclide, indexTemp int) []float64 {
	if indexTemp <= 0 || indexTemp > len(nuc.Tables) {
		return nil
	}
	return nuc.Tables[indexTemp-1].Elastic
}

// selectSabTemperature mirrors NuclideXS's temperature selection (spec
// §4.2): nearest-mode returns the first table within the configured
// tolerance, falling back to the true argmin (matching
// selectNuclideTemperature) when none is within tolerance.
func (e *Evaluator) selectSabTemperature(sab *model.SabTable, sqrtKT float64, rng model.RNGStream) int {
	kT := sqrtKT * sqrtKT
	if e.Config.TemperatureMethod == TemperatureNearest {
		tolerance := e.Config.KBoltzmann * e.Config.TemperatureToleranceK
		best, bestDiff := 1, math.Abs(sab.KTs[0]-kT)
		for i, candidate := range sab.KTs {
			diff := math.Abs(candidate - kT)
			if diff < tolerance {
				return i + 1
			}
			if diff < bestDiff {
				best, bestDiff = i+1, diff
			}
		}
		return best
	}
	return stochasticTemperatureIndex(sab.KTs, kT, rng)
}

// sabInelastic implements spec §4.3's inelastic lookup: clamp to the
// first grid point below it, otherwise binary search and linearly
// interpolate.
func sabInelastic(grid, xs []float64, energy float64) float64 {
	if len(grid) == 0 {
		return 0
	}
	if energy < grid[0] {
		return xs[0]
	}
	i := gridsearch.BracketAscending(grid, energy)
	f := 0.0
	if grid[i] != grid[i-1] {
		f = (energy - grid[i-1]) / (grid[i] - grid[i-1])
	}
	return (1-f)*xs[i-1] + f*xs[i]
}

// sabElastic implements spec §4.3's elastic branch: coherent-exact mode
// (Bragg edges) returns a cumulative integral divided by energy with no
// interpolation fraction; incoherent mode linearly interpolates the
// tabulated cross section, saturating to the grid floor below the first
// point.
func sabElastic(table model.SabTemperatureTable, energy float64) float64 {
	if energy >= table.ThresholdElastic {
		return 0
	}
	grid, p := table.ElasticGrid, table.ElasticP
	if len(grid) == 0 {
		return 0
	}

	if table.ElasticMode == xsconst.SabElasticExact {
		if energy < grid[0] {
			return 0
		}
		i := gridsearch.BracketAscending(grid, energy)
		return p[i-1] / energy
	}

	if energy < grid[0] {
		return p[0]
	}
	i := gridsearch.BracketAscending(grid, energy)
	f := 0.0
	if grid[i] != grid[i-1] {
		f = (energy - grid[i-1]) / (grid[i] - grid[i-1])
	}
	return (1-f)*p[i-1] + f*p[i]
}
