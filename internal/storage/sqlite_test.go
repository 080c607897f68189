//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"protogonos/internal/model"
)

func TestSQLiteStoreBenchmarkRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "xscore.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	run := model.BenchmarkRun{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		ID:              "run-1",
		CreatedAt:       time.Unix(0, 0).UTC(),
		NuclideCount:    2,
		Iterations:      5000,
		ElapsedNanos:    int64(500 * time.Millisecond),
		MeanTotal:       7.75,
	}
	if err := store.SaveBenchmarkRun(ctx, run); err != nil {
		t.Fatalf("save benchmark run: %v", err)
	}

	loaded, ok, err := store.GetBenchmarkRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("get benchmark run: %v", err)
	}
	if !ok {
		t.Fatalf("expected benchmark run %s", run.ID)
	}
	if loaded.Iterations != run.Iterations || loaded.MeanTotal != run.MeanTotal {
		t.Fatalf("unexpected benchmark run loaded: %+v", loaded)
	}

	snapshot := model.CacheSnapshot{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		RunID:           run.ID,
		Total:           9.1,
		Absorption:      3.2,
		Fission:         1.0,
		NuFission:       2.4,
	}
	if err := store.SaveCacheSnapshot(ctx, snapshot); err != nil {
		t.Fatalf("save cache snapshot: %v", err)
	}
	loadedSnapshot, ok, err := store.GetCacheSnapshot(ctx, run.ID)
	if err != nil {
		t.Fatalf("get cache snapshot: %v", err)
	}
	if !ok {
		t.Fatalf("expected cache snapshot for run %s", run.ID)
	}
	if loadedSnapshot.Total != snapshot.Total {
		t.Fatalf("unexpected cache snapshot loaded: %+v", loadedSnapshot)
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "xscore.db")

	first := NewSQLiteStore(dbPath)
	if err := first.Init(ctx); err != nil {
		t.Fatalf("first init: %v", err)
	}
	run := model.BenchmarkRun{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		ID:              "persisted-run",
	}
	if err := first.SaveBenchmarkRun(ctx, run); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}

	second := NewSQLiteStore(dbPath)
	if err := second.Init(ctx); err != nil {
		t.Fatalf("second init: %v", err)
	}
	t.Cleanup(func() {
		_ = second.Close()
	})

	loaded, ok, err := second.GetBenchmarkRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if !ok || loaded.ID != run.ID {
		t.Fatalf("expected persisted benchmark run, got ok=%t value=%+v", ok, loaded)
	}
}
