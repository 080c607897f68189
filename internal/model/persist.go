package model

import "time"

// VersionedRecord tags a persisted record with the schema/codec versions
// it was written under, the same guard the teacher's storage layer uses
// to refuse decoding a record written by an incompatible version.
type VersionedRecord struct {
	SchemaVersion int
	CodecVersion  int
}

// BenchmarkRun is one xscoreprobe benchmark invocation's summary record
// (spec §2's CLI, §5 storage domain stack): how many synthetic nuclides
// and evaluation iterations it ran, how long it took, and the resulting
// mean macroscopic total cross section.
type BenchmarkRun struct {
	VersionedRecord

	ID           string
	CreatedAt    time.Time
	NuclideCount int
	Iterations   int
	ElapsedNanos int64
	MeanTotal    float64
}

// CacheSnapshot is an optional, offline-inspectable capture of one
// MaterialCacheEntry produced during a benchmark run, keyed by the run
// that produced it.
type CacheSnapshot struct {
	VersionedRecord

	RunID      string
	Total      float64
	Absorption float64
	Fission    float64
	NuFission  float64
}
