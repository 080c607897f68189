package xscore

import (
	"math"

	"protogonos/internal/model"
	"protogonos/internal/xsconst"
	"protogonos/internal/xsmath"
)

// MultipoleEval evaluates the windowed-multipole total, absorption, and
// fission cross sections at (energy, sqrtKT) (spec §4.5). sqrtKT == 0
// selects the 0 K asymptotic pole form; sqrtKT > 0 selects the finite-T
// Faddeeva form. Callers must have already checked mp.StartE <= energy
// <= mp.EndE (spec §4.2's multipole-branch guard).
func (e *Evaluator) MultipoleEval(mp *model.MultipoleArray, energy, sqrtKT float64) (sigT, sigA, sigF float64) {
	sqrtE := math.Sqrt(energy)
	invE := 1 / energy

	window := multipoleWindow(mp, sqrtE)
	startw, endw := mp.WStart[window-1], mp.WEnd[window-1]

	var sigTFactor []complex128
	if endw >= startw {
		sigTFactor = xsmath.SigTFactor(mp.PseudoK0RS, sqrtE)
	}

	ct, ca, cf := e.multipoleCurvefit(mp, window, energy, sqrtE, invE, sqrtKT)
	sigT += ct
	sigA += ca
	sigF += cf

	pt, pa, pf := e.multipolePoles(mp, startw, endw, sigTFactor, sqrtE, invE, sqrtKT)
	sigT += pt
	sigA += pa
	if mp.Fissionable {
		sigF += pf
	}
	return sigT, sigA, sigF
}

// multipoleWindow computes the 1-based window index containing sqrtE
// (spec §4.5): floor((sqrtE - sqrt(startE))/spacing) + 1, clamped to the
// valid window range.
func multipoleWindow(mp *model.MultipoleArray, sqrtE float64) int {
	w := int(math.Floor((sqrtE-math.Sqrt(mp.StartE))/mp.Spacing)) + 1
	if w < 1 {
		w = 1
	}
	if w > len(mp.WStart) {
		w = len(mp.WStart)
	}
	return w
}

func (e *Evaluator) multipoleCurvefit(mp *model.MultipoleArray, window int, energy, sqrtE, invE, sqrtKT float64) (sigT, sigA, sigF float64) {
	broadened := sqrtKT != 0 && window-1 < len(mp.BroadenPoly) && mp.BroadenPoly[window-1] == 1

	channels := []struct {
		field int
		out   *float64
	}{{xsconst.FitT, &sigT}, {xsconst.FitA, &sigA}, {xsconst.FitF, &sigF}}

	if broadened {
		dopp := mp.SqrtAWR / sqrtKT
		basis := e.Poly.Broaden(energy, dopp, mp.FitOrder)
		for _, ch := range channels {
			coeffs := curvefitCoeffs(mp, ch.field, window)
			*ch.out = dot(coeffs, basis)
		}
		return sigT, sigA, sigF
	}

	for _, ch := range channels {
		coeffs := curvefitCoeffs(mp, ch.field, window)
		sum := 0.0
		for k, c := range coeffs {
			sum += c * invE * math.Pow(sqrtE, float64(k))
		}
		*ch.out = sum
	}
	return sigT, sigA, sigF
}

func curvefitCoeffs(mp *model.MultipoleArray, field, window int) []float64 {
	byChannel := mp.Curvefit[field]
	if byChannel == nil || window-1 >= len(byChannel) {
		return nil
	}
	return byChannel[window-1]
}

func dot(coeffs, basis []float64) float64 {
	sum := 0.0
	n := len(coeffs)
	if len(basis) < n {
		n = len(basis)
	}
	for i := 0; i < n; i++ {
		sum += coeffs[i] * basis[i]
	}
	return sum
}

func (e *Evaluator) multipolePoles(mp *model.MultipoleArray, startw, endw int, sigTFactor []complex128, sqrtE, invE, sqrtKT float64) (sigT, sigA, sigF float64) {
	ea := mp.Data[xsconst.MPEA]

	rt, rx, ra, rf := residueFields(mp.Formalism)

	for p := startw; p <= endw; p++ {
		idx := p - 1
		l := 1
		if idx < len(mp.LValue) {
			l = mp.LValue[idx]
		}
		factor := complex(1, 0)
		if l-1 >= 0 && l-1 < len(sigTFactor) {
			factor = sigTFactor[l-1]
		}

		pole := ea[idx]
		RT := fieldAt(mp, rt, idx)
		RA := fieldAt(mp, ra, idx)
		RF := fieldAt(mp, rf, idx)

		if sqrtKT == 0 {
			psiChi := -1i / (pole - complex(sqrtE, 0))
			c := psiChi * complex(invE, 0)

			tTerm := RT * c * factor
			if rx != 0 {
				RX := fieldAt(mp, rx, idx)
				tTerm += RX * c
			}
			sigT += real(tTerm)
			sigA += real(RA * c)
			sigF += real(RF * c)
			continue
		}

		dopp := mp.SqrtAWR / sqrtKT
		z := (complex(sqrtE, 0) - pole) * complex(dopp, 0)
		w := e.Special.Faddeeva(z) * complex(dopp*invE*e.Config.SqrtPi, 0)

		var tTerm complex128
		if mp.Formalism == xsconst.FormMLBW {
			RX := fieldAt(mp, rx, idx)
			tTerm = (RT*factor + RX) * w
		} else {
			tTerm = RT * w * factor
		}
		sigT += real(tTerm)
		sigA += real(RA * w)
		sigF += real(RF * w)
	}
	return sigT, sigA, sigF
}

// residueFields returns the (RT, RX, RA, RF) field indices for a
// formalism; RX is 0 (an invalid field index, never present in Data) for
// RM, which has no competitive residue (spec §3).
func residueFields(formalism int) (rt, rx, ra, rf int) {
	if formalism == xsconst.FormRM {
		return xsconst.RMResidueRT, 0, xsconst.RMResidueRA, xsconst.RMResidueRF
	}
	return xsconst.MLBWResidueRT, xsconst.MLBWResidueRX, xsconst.MLBWResidueRA, xsconst.MLBWResidueRF
}

func fieldAt(mp *model.MultipoleArray, field, idx int) complex128 {
	vals := mp.Data[field]
	if idx < 0 || idx >= len(vals) {
		return 0
	}
	return vals[idx]
}
