package xscore

import (
	"errors"
	"math"

	"protogonos/internal/model"
	"protogonos/internal/xsconst"
	"protogonos/internal/xsmath"
)

// ErrDerivativeAtZeroKelvin is returned by MultipoleDerivEval when asked
// for a temperature derivative at 0 K, where dσ/dT is not defined (spec
// §4.8, §7 fatal error). MultipoleDerivEval reports it as an ordinary
// error return; it does not panic or terminate the process.
var ErrDerivativeAtZeroKelvin = errors.New("xscore: multipole derivative requested at 0 K")

// MultipoleDerivEval evaluates dσ/dT for the windowed-multipole total,
// absorption, and fission cross sections at (energy, sqrtKT) (spec §4.8).
// It shares MultipoleEval's window/pole scaffolding but uses the second
// derivative of the Faddeeva function in place of w(z), and intentionally
// omits the curvefit polynomial's derivative (documented assumption, spec
// §9 open question: the curvefit's contribution to dσ/dT is negligible
// outside very low energies).
func (e *Evaluator) MultipoleDerivEval(mp *model.MultipoleArray, energy, sqrtKT float64) (dSigT, dSigA, dSigF float64, err error) {
	if sqrtKT == 0 {
		return 0, 0, 0, ErrDerivativeAtZeroKelvin
	}

	sqrtE := math.Sqrt(energy)
	invE := 1 / energy

	window := multipoleWindow(mp, sqrtE)
	startw, endw := mp.WStart[window-1], mp.WEnd[window-1]

	var sigTFactor []complex128
	if endw >= startw {
		sigTFactor = xsmath.SigTFactor(mp.PseudoK0RS, sqrtE)
	}

	ea := mp.Data[xsconst.MPEA]
	rt, rx, ra, rf := residueFields(mp.Formalism)
	dopp := mp.SqrtAWR / sqrtKT

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

		z := (complex(sqrtE, 0) - pole) * complex(dopp, 0)
		wSecond := e.Special.FaddeevaSecondDerivative(z)
		wVal := wSecond * complex(-invE*e.Config.SqrtPi*0.5, 0)

		var tTerm complex128
		if mp.Formalism == xsconst.FormMLBW {
			RX := fieldAt(mp, rx, idx)
			tTerm = (RT*factor + RX) * wVal
		} else {
			tTerm = RT * wVal * factor
		}
		dSigT += real(tTerm)
		dSigA += real(RA * wVal)
		dSigF += real(RF * wVal)
	}

	temperature := sqrtKT * sqrtKT / e.Config.KBoltzmann
	scale := -0.5 * mp.SqrtAWR / math.Sqrt(e.Config.KBoltzmann) * math.Pow(temperature, -1.5)
	dSigT *= scale
	dSigA *= scale
	if mp.Fissionable {
		dSigF *= scale
	} else {
		dSigF = 0
	}
	return dSigT, dSigA, dSigF, nil
}
