// Package xsconst holds the fixed integer and field-index constants that
// give the cross-section core's in-memory tables a stable meaning. Their
// numeric values are the ones persisted nuclear data files use, so they
// must never be renumbered.
package xsconst

// Resonance formalism identifiers, stored per MultipoleArray.
const (
	FormMLBW = 1
	FormRM   = 2
)

// MPEA indexes the complex pole-location field inside a MultipoleArray's
// complex data table.
const MPEA = 1

// Curvefit channel indices into MultipoleArray.Curvefit.
const (
	FitT = 1
	FitA = 2
	FitF = 3
)

// MLBW residue field indices into MultipoleArray.Data.
const (
	MLBWResidueRT = 1
	MLBWResidueRX = 2
	MLBWResidueRA = 3
	MLBWResidueRF = 4
)

// RM residue field indices into MultipoleArray.Data. RM has no RX
// (competitive) residue.
const (
	RMResidueRT = 1
	RMResidueRA = 2
	RMResidueRF = 3
)

// S(alpha,beta) elastic treatment.
const (
	SabElasticExact      = 1 // coherent (Bragg-edge) elastic scattering
	SabElasticIncoherent = 2
)

// URR interpolation laws.
const (
	LinearLinear = 1
	LogLog       = 2
)

// URR probability-table channel indices.
const (
	URRCumProb = 1
	URRElastic = 2
	URRFission = 3
	URRNGamma  = 4
)

// RNG stream identifiers. The tracking stream advances once per history
// event; the URR probability-table stream is a side channel switched into
// only for the duration of a single band draw so that the tracking
// stream's position is unaffected by whether URR sampling ran.
const (
	StreamTracking  = 1
	StreamURRPtable = 2
)

// DepletionRx lists the six depletion reaction MT numbers the core tracks
// per nuclide, in the fixed order micro-cache depletion slices use.
// Position 4 is always the radiative-capture reaction (n,gamma), which
// NuclideXS's multipole branch special-cases.
var DepletionRx = [6]int{16, 17, 18, 102, 103, 107}

// NGammaDepletionPosition is the 1-based position of MT 102, (n,gamma),
// inside DepletionRx and any per-nuclide depletion value slice.
const NGammaDepletionPosition = 4

// CacheInvalid marks a lazily-materialized cache field
// (MicroCacheEntry.Elastic) as not-yet-computed for the current
// (E, sqrtkT) pair.
const CacheInvalid = -1.0

// NoSabTable marks MicroCacheEntry.IndexSab as "no S(alpha,beta) table
// applies to this call."
const NoSabTable = 0

// NoTemperatureIndex is the sentinel NuclideXS leaves in
// MicroCacheEntry.IndexTemp after the multipole branch runs, signalling
// that IndexGrid/InterpFactor are not valid tabulated-grid coordinates.
const NoTemperatureIndex = -1
