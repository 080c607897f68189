package model

// MultipoleArray is the windowed-multipole resonance representation for
// one nuclide (spec §3, §4.5). Energy windows are laid out on an evenly
// spaced lattice in sqrt(E); each window indexes a contiguous run of
// poles.
type MultipoleArray struct {
	StartE float64
	EndE   float64

	// Spacing is the window width in units of sqrt(E).
	Spacing float64

	// WStart[i]/WEnd[i] give the 1-based inclusive [start, end] range of
	// poles belonging to window i (1-based).
	WStart []int
	WEnd   []int

	// BroadenPoly[i] is 1 if window i's curvefit contribution should be
	// Doppler-broadened, 0 if it should be evaluated as a raw polynomial.
	BroadenPoly []int

	// Curvefit[channel][window] holds the polynomial coefficients (index
	// k multiplies (sqrtE)^k/E, so index 0 is the 1/E term) for one
	// curvefit channel (xsconst.FitT/FitA/FitF) in one window.
	Curvefit map[int][][]float64

	// Data[field][pole] holds the complex pole data: pole locations at
	// field xsconst.MPEA, and per-formalism residues otherwise.
	Data map[int][]complex128

	// LValue[pole] is the 1-based angular-momentum index of each pole.
	LValue []int
	NumL   int

	// PseudoK0RS[l] is the pseudo hard-sphere phase-shift constant for
	// angular-momentum channel l (1-based).
	PseudoK0RS []float64

	SqrtAWR     float64
	FitOrder    int
	Fissionable bool
	Formalism   int // xsconst.FormMLBW or xsconst.FormRM
}
