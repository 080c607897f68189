// Package xsengine is the public client wrapping internal/xscore, the
// role pkg/protogonos plays for the teacher's evolution platform: a thin
// façade that wires the evaluation core to storage and hands callers
// request/response structs instead of the internal cache plumbing.
package xsengine

import (
	"context"
	"math"
	"time"

	"protogonos/internal/model"
	"protogonos/internal/rng"
	"protogonos/internal/storage"
	"protogonos/internal/xscore"
)

const defaultDBPath = "xscore.db"

// Options configures a new Engine.
type Options struct {
	StoreKind string // "memory" (default) or "sqlite"
	DBPath    string
	Config    xscore.Config // zero value selects xscore.DefaultConfig()
}

// Engine is the public entry point: an xscore.Evaluator plus the storage
// backend that persists benchmark records.
type Engine struct {
	evaluator *xscore.Evaluator
	store     storage.Store
}

func New(opts Options) (*Engine, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg == (xscore.Config{}) {
		cfg = xscore.DefaultConfig()
	}

	return &Engine{
		evaluator: xscore.NewEvaluator(cfg),
		store:     store,
	}, nil
}

func (e *Engine) Close() error {
	return storage.CloseIfSupported(e.store)
}

func (e *Engine) Init(ctx context.Context) error {
	return e.store.Init(ctx)
}

// MaterialRequest bundles one MaterialXS call's arguments (spec §4.1).
type MaterialRequest struct {
	Material *model.Material
	Source   xscore.NuclideSource
	Micro    []*model.MicroCacheEntry
	Energy   float64
	SqrtKT   float64
	RNG      model.RNGStream
}

// MaterialResult is the macroscopic result of one EvalMaterial call.
type MaterialResult struct {
	Total      float64
	Absorption float64
	Fission    float64
	NuFission  float64
}

// EvalMaterial evaluates a material's macroscopic cross sections at
// (req.Energy, req.SqrtKT).
func (e *Engine) EvalMaterial(req MaterialRequest) MaterialResult {
	var cache model.MaterialCacheEntry
	e.evaluator.MaterialXS(req.Material, req.Source, &cache, req.Micro, req.Energy, req.SqrtKT, req.RNG)
	return MaterialResult{
		Total:      cache.Total,
		Absorption: cache.Absorption,
		Fission:    cache.Fission,
		NuFission:  cache.NuFission,
	}
}

// NuclideRequest bundles one NuclideXS call's arguments (spec §4.2).
type NuclideRequest struct {
	Nuclide  *model.Nuclide
	Cache    *model.MicroCacheEntry
	Energy   float64
	SqrtKT   float64
	IndexSab int
	SabFrac  float64
	Sab      *model.SabTable
	RNG      model.RNGStream
}

// EvalNuclide evaluates one nuclide's microscopic cross sections,
// writing the result into req.Cache.
func (e *Engine) EvalNuclide(req NuclideRequest) {
	e.evaluator.NuclideXS(req.Nuclide, req.Cache, req.Energy, req.SqrtKT, req.IndexSab, req.SabFrac, req.Sab, req.RNG)
}

// BenchmarkRequest configures Benchmark: a synthetic material of
// NuclideCount tabulated nuclides, evaluated Iterations times at
// log-uniform random energies, deterministic in Seed.
type BenchmarkRequest struct {
	RunID        string
	NuclideCount int
	Iterations   int
	Seed         int64
	Persist      bool
}

// BenchmarkSummary is the result of one Benchmark call.
type BenchmarkSummary struct {
	RunID     string
	Elapsed   time.Duration
	MeanTotal float64
}

// Benchmark times Iterations macroscopic cross-section evaluations of a
// synthetic material built from BuildSyntheticMaterial, optionally
// persisting the result as a model.BenchmarkRun (spec §2, §5 domain
// stack).
func (e *Engine) Benchmark(ctx context.Context, req BenchmarkRequest) (BenchmarkSummary, error) {
	if req.NuclideCount < 1 {
		req.NuclideCount = 1
	}
	if req.Iterations < 1 {
		req.Iterations = 1000
	}

	mat, src, micro := BuildSyntheticMaterial(req.NuclideCount, req.Seed)
	stream := rng.NewTrackingStream(req.Seed)

	logMin, logMax := math.Log(1e-5), math.Log(1e6)
	meanTotal := 0.0

	start := time.Now()
	for i := 0; i < req.Iterations; i++ {
		u := stream.Sample()
		energy := math.Exp(logMin + u*(logMax-logMin))

		result := e.EvalMaterial(MaterialRequest{
			Material: mat,
			Source:   src,
			Micro:    micro,
			Energy:   energy,
			SqrtKT:   math.Sqrt(roomTemperatureKT),
			RNG:      stream,
		})
		meanTotal += result.Total
	}
	elapsed := time.Since(start)
	meanTotal /= float64(req.Iterations)

	summary := BenchmarkSummary{RunID: req.RunID, Elapsed: elapsed, MeanTotal: meanTotal}
	if !req.Persist {
		return summary, nil
	}

	run := model.BenchmarkRun{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		ID:           req.RunID,
		CreatedAt:    time.Now().UTC(),
		NuclideCount: req.NuclideCount,
		Iterations:   req.Iterations,
		ElapsedNanos: int64(elapsed),
		MeanTotal:    meanTotal,
	}
	if err := e.store.SaveBenchmarkRun(ctx, run); err != nil {
		return summary, err
	}
	return summary, nil
}
