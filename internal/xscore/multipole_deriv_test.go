package xscore

import (
	"errors"
	"testing"
)

func TestMultipoleDerivEvalAtZeroKelvinIsFatal(t *testing.T) {
	mp := singlePoleRM(complex(4, 1), complex(1, 0))
	e := NewEvaluator(DefaultConfig())

	_, _, _, err := e.MultipoleDerivEval(mp, 4.0, 0)
	if !errors.Is(err, ErrDerivativeAtZeroKelvin) {
		t.Fatalf("err = %v, want ErrDerivativeAtZeroKelvin", err)
	}
}

func TestMultipoleDerivEvalNonFissionableZeroesFissionDerivative(t *testing.T) {
	mp := singlePoleRM(complex(4, 1), complex(1, 0))
	mp.Fissionable = false
	e := NewEvaluator(DefaultConfig())

	_, _, dSigF, err := e.MultipoleDerivEval(mp, 4.0, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dSigF != 0 {
		t.Fatalf("dSigF = %v, want 0 for a non-fissionable nuclide", dSigF)
	}
}

func TestMultipoleDerivEvalFissionableReturnsNonZeroDerivative(t *testing.T) {
	mp := singlePoleRM(complex(4, 1), complex(1, 0))
	// The derivative scales with SqrtAWR, which singlePoleRM leaves at 0.
	mp.SqrtAWR = 1
	e := NewEvaluator(DefaultConfig())

	dSigT, dSigA, dSigF, err := e.MultipoleDerivEval(mp, 4.0, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dSigT == 0 || dSigA == 0 || dSigF == 0 {
		t.Fatalf("expected non-zero derivatives, got T=%v A=%v F=%v", dSigT, dSigA, dSigF)
	}
}
