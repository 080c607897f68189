package storage

import (
	"context"

	"protogonos/internal/model"
)

// Store defines transaction-like persistence operations for the
// benchmark records xscoreprobe benchmark produces (spec §5 domain
// stack). It keeps the teacher's memory/sqlite split and swap pattern; the
// entities behind it are this module's own.
type Store interface {
	Init(ctx context.Context) error

	SaveBenchmarkRun(ctx context.Context, run model.BenchmarkRun) error
	GetBenchmarkRun(ctx context.Context, id string) (model.BenchmarkRun, bool, error)
	ListBenchmarkRuns(ctx context.Context) ([]model.BenchmarkRun, error)

	SaveCacheSnapshot(ctx context.Context, snapshot model.CacheSnapshot) error
	GetCacheSnapshot(ctx context.Context, runID string) (model.CacheSnapshot, bool, error)
}
