package xscore

import "protogonos/internal/xsmath"

// Evaluator bundles the run-wide configuration with the two swappable
// special-function strategies MultipoleEval and MultipoleDerivEval
// consume (spec §6e). It carries no per-particle state; every exported
// method takes the particle-owned cache entries it reads and writes as
// explicit arguments, matching the teacher's own preference for threading
// state through call signatures (internal/evo.Selector,
// internal/tuning.Exoself) over hiding it on shared package state.
type Evaluator struct {
	Config  Config
	Special xsmath.SpecialFunctions
	Poly    xsmath.PolynomialBroadener
}

// NewEvaluator builds an Evaluator with the default Faddeeva and
// curvefit-broadening implementations.
func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{
		Config:  cfg,
		Special: xsmath.DefaultSpecialFunctions{},
		Poly:    xsmath.DefaultPolynomialBroadener{},
	}
}
