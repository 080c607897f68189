package xscore

import (
	"protogonos/internal/gridsearch"
	"protogonos/internal/model"
	"protogonos/internal/xsconst"
)

// NuclideXS is the per-nuclide entry point MaterialXS calls for every
// constituent of a material (spec §4.2). It dispatches between the
// windowed-multipole and tabulated branches, layers on S(alpha,beta)
// thermal scattering and unresolved-resonance probability-table sampling
// where applicable, and leaves the result in cache. A call whose
// (energy, sqrtKT, indexSab, sabFrac) already matches cache's last call
// signature is a no-op (spec §3 cache invariant, §8 idempotence).
func (e *Evaluator) NuclideXS(nuc *model.Nuclide, cache *model.MicroCacheEntry, energy, sqrtKT float64, indexSab int, sabFrac float64, sab *model.SabTable, rng model.RNGStream) {
	if cache.Valid(energy, sqrtKT, indexSab, sabFrac) {
		return
	}
	cache.Reset()

	var urr *model.URRTable
	tabulated := true

	if mp := nuc.Multipole; mp != nil && energy >= mp.StartE && energy <= mp.EndE {
		sigT, sigA, sigF := e.MultipoleEval(mp, energy, sqrtKT)
		cache.Total = sigT
		cache.Absorption = sigA
		if nuc.Fissionable {
			cache.Fission = sigF
			if nuc.Nu != nil {
				cache.NuFission = sigF * nuc.Nu(energy, model.NuTotalEmission)
			}
		}
		cache.Depletion = [6]float64{}
		cache.Depletion[xsconst.NGammaDepletionPosition-1] = sigA - sigF
		cache.IndexTemp = xsconst.NoTemperatureIndex
		cache.IndexGrid = 0
		cache.InterpFactor = 0
		tabulated = false
	}

	if tabulated {
		urr = e.evalTabulated(nuc, cache, energy, sqrtKT, rng)
	}

	if sab != nil && indexSab != xsconst.NoSabTable {
		e.SabEval(nuc, sab, cache, energy, sqrtKT, indexSab, sabFrac, rng)
	}

	if tabulated && e.Config.URRPtablesOn && urr != nil {
		e.UrrEval(nuc, urr, cache, energy, rng)
	}

	cache.LastE = energy
	cache.LastSqrtKT = sqrtKT
}

// evalTabulated fills cache from a nuclide's pointwise tables: select a
// temperature, bracket the energy within that temperature's grid using
// the shared logarithmic bucket as a search window, and linearly
// interpolate every channel. It returns the URR table for the chosen
// temperature, or nil if that temperature carries none.
func (e *Evaluator) evalTabulated(nuc *model.Nuclide, cache *model.MicroCacheEntry, energy, sqrtKT float64, rng model.RNGStream) *model.URRTable {
	iTemp := e.selectNuclideTemperature(nuc, sqrtKT, rng)
	table := nuc.Tables[iTemp-1]

	low, high := 1, len(table.Grid)-1
	if bucket := nuc.LogBucket(energy); bucket >= 0 && bucket < len(table.GridIndex) {
		low, high = table.GridIndex[bucket][0], table.GridIndex[bucket][1]
	}
	iGrid := gridsearch.BracketWindow(table.Grid, low, high+1, energy)
	if table.Grid[iGrid-1] == table.Grid[iGrid] && iGrid < len(table.Grid)-1 {
		iGrid++
	}

	f := 0.0
	if table.Grid[iGrid] != table.Grid[iGrid-1] {
		f = (energy - table.Grid[iGrid-1]) / (table.Grid[iGrid] - table.Grid[iGrid-1])
	}

	cache.IndexTemp = iTemp
	cache.IndexGrid = iGrid
	cache.InterpFactor = f

	cache.Total = interpolateAt(table.Total, iGrid, f)
	cache.Absorption = interpolateAt(table.Absorption, iGrid, f)
	if nuc.Fissionable {
		cache.Fission = interpolateAt(table.Fission, iGrid, f)
		cache.NuFission = interpolateAt(table.NuFission, iGrid, f)
	}

	if e.Config.NeedDepletionRx {
		for i, rec := range table.Depletion {
			if rec == nil {
				continue
			}
			cache.Depletion[i] = interpolateAt(rec.Value, iGrid-rec.Threshold+1, f)
		}
	}

	return table.URR
}
