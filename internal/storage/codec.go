package storage

import (
	"encoding/json"
	"errors"

	"protogonos/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeBenchmarkRun(run model.BenchmarkRun) ([]byte, error) {
	return json.Marshal(run)
}

func DecodeBenchmarkRun(data []byte) (model.BenchmarkRun, error) {
	var run model.BenchmarkRun
	if err := json.Unmarshal(data, &run); err != nil {
		return model.BenchmarkRun{}, err
	}
	if err := checkVersion(run.VersionedRecord); err != nil {
		return model.BenchmarkRun{}, err
	}
	return run, nil
}

func EncodeCacheSnapshot(snapshot model.CacheSnapshot) ([]byte, error) {
	return json.Marshal(snapshot)
}

func DecodeCacheSnapshot(data []byte) (model.CacheSnapshot, error) {
	var snapshot model.CacheSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return model.CacheSnapshot{}, err
	}
	if err := checkVersion(snapshot.VersionedRecord); err != nil {
		return model.CacheSnapshot{}, err
	}
	return snapshot, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
