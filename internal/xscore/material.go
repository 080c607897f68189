package xscore

import (
	"protogonos/internal/model"
	"protogonos/internal/xsconst"
)

// NuclideSource dereferences the indices a Material carries into the
// nuclide and S(alpha,beta) data MaterialXS needs, the caller's global
// data store (spec §3). The core never owns this data itself.
type NuclideSource interface {
	Nuclide(index int) *model.Nuclide
	Sab(index int) *model.SabTable
}

// MaterialXS computes the macroscopic total/absorption/fission/nu-fission
// cross sections for mat at (energy, sqrtKT) by calling NuclideXS on each
// constituent and accumulating atom-density-weighted microscopic results
// (spec §4.1). micro holds one MicroCacheEntry per slot in
// mat.NuclideIndex, owned by the caller for the particle's lifetime.
func (e *Evaluator) MaterialXS(mat *model.Material, src NuclideSource, cache *model.MaterialCacheEntry, micro []*model.MicroCacheEntry, energy, sqrtKT float64, rng model.RNGStream) {
	cache.Zero()
	if mat.Void {
		return
	}

	cursor := 0
	for slot := 0; slot < mat.NNuclides(); slot++ {
		nuc := src.Nuclide(mat.NuclideIndex[slot])

		indexSab := xsconst.NoSabTable
		sabFrac := 0.0
		var sab *model.SabTable

		if cursor < len(mat.ISabNuclides) && mat.ISabNuclides[cursor] == slot+1 {
			sabIdx := mat.ISabTables[cursor]
			frac := mat.SabFracs[cursor]
			candidate := src.Sab(sabIdx)
			if candidate != nil && energy < sabInelasticThreshold(candidate) {
				indexSab, sabFrac, sab = sabIdx, frac, candidate
			}
			cursor++
		}

		entry := micro[slot]
		e.NuclideXS(nuc, entry, energy, sqrtKT, indexSab, sabFrac, sab, rng)

		weight := mat.AtomDensity[slot]
		cache.Total += weight * entry.Total
		cache.Absorption += weight * entry.Absorption
		cache.Fission += weight * entry.Fission
		cache.NuFission += weight * entry.NuFission
	}
}

// sabInelasticThreshold reports the energy above which a S(alpha,beta)
// table no longer applies and free-atom scattering takes over. The
// threshold is a property of the moderator, not of any one temperature,
// so the first tabulated temperature's value stands for all of them.
func sabInelasticThreshold(sab *model.SabTable) float64 {
	if len(sab.Tables) == 0 {
		return 0
	}
	return sab.Tables[0].ThresholdInelastic
}
