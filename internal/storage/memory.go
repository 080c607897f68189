package storage

import (
	"context"
	"sync"

	"protogonos/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string]model.BenchmarkRun
	snapshots   map[string]model.CacheSnapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string]model.BenchmarkRun)
	s.snapshots = make(map[string]model.CacheSnapshot)
	return nil
}

func (s *MemoryStore) SaveBenchmarkRun(_ context.Context, run model.BenchmarkRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs[run.ID] = run
	return nil
}

func (s *MemoryStore) GetBenchmarkRun(_ context.Context, id string) (model.BenchmarkRun, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	return run, ok, nil
}

func (s *MemoryStore) ListBenchmarkRuns(_ context.Context) ([]model.BenchmarkRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]model.BenchmarkRun, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	return runs, nil
}

func (s *MemoryStore) SaveCacheSnapshot(_ context.Context, snapshot model.CacheSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots[snapshot.RunID] = snapshot
	return nil
}

func (s *MemoryStore) GetCacheSnapshot(_ context.Context, runID string) (model.CacheSnapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, ok := s.snapshots[runID]
	return snapshot, ok, nil
}
