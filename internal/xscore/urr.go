package xscore

import (
	"hash/fnv"
	"math"

	"protogonos/internal/gridsearch"
	"protogonos/internal/model"
	"protogonos/internal/xsconst"
)

// UrrEval samples the unresolved-resonance probability table and rewrites
// the cached micro cross sections for energies inside it (spec §4.4).
// Callers must have already run the tabulated branch of NuclideXS for
// this energy so cache.IndexGrid/InterpFactor/Fission/Absorption reflect
// the smooth background cross sections MultiplySmooth multiplies against,
// and cache.IndexTemp selects the temperature table InelasticMT is looked
// up in.
func (e *Evaluator) UrrEval(nuc *model.Nuclide, urr *model.URRTable, cache *model.MicroCacheEntry, energy float64, rng model.RNGStream) {
	if energy < urr.RangeMin || energy > urr.RangeMax || len(urr.Energy) < 2 {
		return
	}

	row := gridsearch.BracketAscending(urr.Energy, energy) - 1 // 0-based lower row
	eLow, eHigh := urr.Energy[row], urr.Energy[row+1]

	// The URR draw lives on its own RNG stream so that switching it never
	// perturbs the tracking stream's sequence, and FuturePRN keys off the
	// nuclide identity so the same draw recurs at every temperature a
	// particle revisits this energy at for this nuclide, while staying
	// independent of whatever other nuclide happens to sit at the same
	// energy (spec §4.4, §8 temperature correlation).
	prev := rng.SetStream(xsconst.StreamURRPtable)
	r := rng.FuturePRN(nuclideStreamKey(nuc))
	rng.SetStream(prev)

	cumLower := urrChannel(urr, row, xsconst.URRCumProb)
	bandLow := gridsearch.LowerBound(cumLower, r) - 1
	if bandLow >= len(cumLower) {
		bandLow = len(cumLower) - 1
	}
	if bandLow < 0 {
		return
	}

	cumUpper := urrChannel(urr, row+1, xsconst.URRCumProb)
	bandUp := gridsearch.LowerBound(cumUpper, r) - 1
	if bandUp >= len(cumUpper) {
		bandUp = len(cumUpper) - 1
	}
	if bandUp < 0 {
		bandUp = bandLow
	}

	elastic := urrInterp(urr, row, bandLow, bandUp, xsconst.URRElastic, eLow, eHigh, energy)
	fission := urrInterp(urr, row, bandLow, bandUp, xsconst.URRFission, eLow, eHigh, energy)
	capture := urrInterp(urr, row, bandLow, bandUp, xsconst.URRNGamma, eLow, eHigh, energy)

	if urr.MultiplySmooth {
		smoothElastic := freeAtomElasticAt(cache, nuclideElasticTable(nuc, cache.IndexTemp))
		smoothCapture := cache.Absorption - cache.Fission
		elastic *= smoothElastic
		fission *= cache.Fission
		capture *= smoothCapture
	}
	if elastic < 0 {
		elastic = 0
	}
	if fission < 0 {
		fission = 0
	}
	if capture < 0 {
		capture = 0
	}

	inelastic := 0.0
	if urr.InelasticFlag > 0 {
		inelastic = inelasticReaction(nuc, cache, urr.InelasticMT)
	}

	cache.Elastic = elastic
	cache.Fission = fission
	cache.Absorption = capture + fission
	cache.Total = elastic + inelastic + capture + fission
	cache.UsePTable = true

	if nuc.Fissionable && nuc.Nu != nil {
		cache.NuFission = nuc.Nu(energy, model.NuTotalEmission) * fission
	} else {
		cache.NuFission = 0
	}
}

// nuclideStreamKey derives the FuturePRN key for a nuclide's URR draw from
// its identity, not the energy being evaluated, so that two different
// nuclides sampled at the same energy draw independently while the same
// nuclide sampled at the same energy across temperatures stays correlated.
func nuclideStreamKey(nuc *model.Nuclide) int64 {
	h := fnv.New64a()
	h.Write([]byte(nuc.Name))
	return int64(h.Sum64())
}

func urrChannel(urr *model.URRTable, row, channel int) []float64 {
	return urr.Prob[row][channel-1]
}

// urrInterp samples one channel across the two rows bracketing energy,
// using bandLow on the lower row and bandUp on the upper row (each row's
// own cumulative-probability draw selects its own band independently) and
// the table's declared interpolation law. Log-log interpolation is
// undefined when either endpoint is non-positive, so that channel is 0
// for this call rather than falling back to a linear result.
func urrInterp(urr *model.URRTable, row, bandLow, bandUp, channel int, eLow, eHigh, energy float64) float64 {
	low := urrChannel(urr, row, channel)[bandLow]
	high := urrChannel(urr, row+1, channel)[bandUp]

	if urr.InterpLaw == xsconst.LogLog {
		if low <= 0 || high <= 0 || eLow <= 0 {
			return 0
		}
		flog := math.Log(energy/eLow) / math.Log(eHigh/eLow)
		return math.Exp((1-flog)*math.Log(low) + flog*math.Log(high))
	}

	f := 0.0
	if eHigh != eLow {
		f = (energy - eLow) / (eHigh - eLow)
	}
	return (1-f)*low + f*high
}

// inelasticReaction looks up the designated inelastic reaction's cached
// value at the micro cache's (IndexGrid, InterpFactor), the same pair the
// tabulated branch of NuclideXS computed for this energy and temperature.
func inelasticReaction(nuc *model.Nuclide, cache *model.MicroCacheEntry, mt int) float64 {
	if cache.IndexTemp <= 0 || cache.IndexTemp > len(nuc.Tables) {
		return 0
	}
	table := nuc.Tables[cache.IndexTemp-1]
	for _, rec := range table.Depletion {
		if rec != nil && rec.MT == mt {
			return interpolateAt(rec.Value, cache.IndexGrid-rec.Threshold+1, cache.InterpFactor)
		}
	}
	return 0
}
