package model

// Material describes one region's nuclide composition (spec §3).
// NuclideIndex[i] indexes into the caller's global nuclide store; the
// core never dereferences nuclides by any other means.
type Material struct {
	Void bool

	NuclideIndex []int
	AtomDensity  []float64

	// ISabNuclides is a strictly ascending list of 1-based slot indices
	// into NuclideIndex/AtomDensity that carry an S(alpha,beta) override.
	// ISabTables[j]/SabFracs[j] are the corresponding S(alpha,beta) table
	// index (into the caller's global S(alpha,beta) store) and blend
	// fraction for ISabNuclides[j].
	ISabNuclides []int
	ISabTables   []int
	SabFracs     []float64
}

// NNuclides reports how many nuclides the material is composed of.
func (m *Material) NNuclides() int {
	return len(m.NuclideIndex)
}
