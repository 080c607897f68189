package model

// SabTable is the thermal scattering law S(alpha,beta) representation
// for one nuclide/moderator pair (spec §3, §4.3).
type SabTable struct {
	KTs    []float64
	Tables []SabTemperatureTable // Tables[i] corresponds to KTs[i]
}

// SabTemperatureTable holds one temperature's inelastic and elastic
// scattering data.
type SabTemperatureTable struct {
	InelasticGrid []float64
	InelasticXS   []float64

	// ElasticGrid/ElasticP hold, respectively, energy and the tabulated
	// quantity P used by ElasticMode to produce a cross section: for
	// SabElasticExact, P is a cumulative Bragg-edge integral and the
	// cross section is P/E; for SabElasticIncoherent, P is the cross
	// section itself.
	ElasticGrid []float64
	ElasticP    []float64
	ElasticMode int // xsconst.SabElasticExact or xsconst.SabElasticIncoherent

	ThresholdInelastic float64
	ThresholdElastic   float64
}

// URRTable is one temperature's unresolved-resonance probability table
// (spec §3, §4.4): a cumulative-probability ladder of bands at each of a
// set of energy rows, plus per-band elastic/fission/capture values.
type URRTable struct {
	Energy []float64 // ascending row energies

	// Prob[row][channel][band] holds the probability-table entries.
	// channel is one of xsconst.URRCumProb/URRElastic/URRFission/URRNGamma.
	Prob [][][]float64

	InterpLaw      int  // xsconst.LinearLinear or xsconst.LogLog
	InelasticFlag  int  // > 0 selects the designated inelastic reaction
	MultiplySmooth bool // multiply sampled channels by the smooth background

	// InelasticMT names which per-temperature reaction (by MT) supplies
	// the inelastic contribution when InelasticFlag > 0.
	InelasticMT int

	RangeMin float64
	RangeMax float64
}
