package xsmath

import "math"

// PolynomialBroadener is the windowed-multipole curvefit Doppler
// broadener MultipoleEval consumes (spec §4.5, §6): given an energy and
// dopp = sqrtAWR/sqrtkT, it returns the Doppler-broadened basis functions
// p_k(E; dopp) for k = 0..order, which the caller dots with a window's
// curvefit coefficients to get that channel's broadened contribution.
type PolynomialBroadener interface {
	Broaden(energy, dopp float64, order int) []float64
}

// DefaultPolynomialBroadener evaluates the closed-form Doppler broadening
// of the power-law basis functions (sqrtE)^k/E against a Maxwellian
// relative-velocity distribution, the erf/exp-based recursive form
// windowed-multipole implementations use for curvefit broadening. No
// ecosystem Go package implements this narrow a piece of resonance
// physics, so it is built directly on math.Erf/math.Exp, mirroring how
// the teacher hand-derives its own activation derivatives in
// internal/nn/derivatives.go.
type DefaultPolynomialBroadener struct{}

func (DefaultPolynomialBroadener) Broaden(energy, dopp float64, order int) []float64 {
	out := make([]float64, order+1)
	if order < 0 {
		return out
	}

	sqrtE := math.Sqrt(energy)
	beta := sqrtE * dopp
	halfInvDopp2 := 0.5 / (dopp * dopp)
	erfBeta := math.Erf(beta)
	expTerm := math.Exp(-beta * beta)

	out[0] = erfBeta / energy
	if order >= 1 {
		out[1] = 1 / sqrtE
	}
	if order >= 2 {
		out[2] = out[0]*(halfInvDopp2+energy) + expTerm/(beta*sqrtPi)
	}
	if order >= 3 {
		out[3] = out[1]*(halfInvDopp2+energy) + expTerm/(dopp*sqrtPi)
	}
	for k := 4; k <= order; k++ {
		out[k] = float64(k-2)*halfInvDopp2*out[k-2] + energy*out[k-2]
	}
	return out
}
