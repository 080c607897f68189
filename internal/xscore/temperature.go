package xscore

import (
	"math"

	"protogonos/internal/gridsearch"
	"protogonos/internal/model"
)

// stochasticTemperatureIndex implements the stochastic interpolation rule
// shared by NuclideXS (spec §4.2) and SabEval (spec §4.3): bracket the
// target kT in the ascending kTs table, draw a uniform variate, and
// advance to the upper temperature whenever the bracket fraction exceeds
// it. Below the first or above the last tabulated temperature it clamps
// to the nearest end rather than drawing at all.
func stochasticTemperatureIndex(kTs []float64, kT float64, rng model.RNGStream) int {
	if len(kTs) == 1 || kT <= kTs[0] {
		return 1
	}
	if kT >= kTs[len(kTs)-1] {
		return len(kTs)
	}

	i := gridsearch.BracketAscending(kTs, kT)
	f := 0.0
	if kTs[i] != kTs[i-1] {
		f = (kT - kTs[i-1]) / (kTs[i] - kTs[i-1])
	}
	if f > rng.Sample() {
		return i + 1
	}
	return i
}

// selectNuclideTemperature picks a 1-based index into nuc.KTs for
// NuclideXS's tabulated branch (spec §4.2): nearest mode takes the
// closest tabulated temperature outright, interpolated mode draws
// stochastically between the bracketing pair.
func (e *Evaluator) selectNuclideTemperature(nuc *model.Nuclide, sqrtKT float64, rng model.RNGStream) int {
	kT := sqrtKT * sqrtKT
	if e.Config.TemperatureMethod == TemperatureNearest {
		best, bestDiff := 1, math.Abs(nuc.KTs[0]-kT)
		for i := 1; i < len(nuc.KTs); i++ {
			if diff := math.Abs(nuc.KTs[i] - kT); diff < bestDiff {
				best, bestDiff = i+1, diff
			}
		}
		return best
	}
	return stochasticTemperatureIndex(nuc.KTs, kT, rng)
}
