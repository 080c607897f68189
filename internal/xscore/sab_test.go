package xscore

import (
	"math"
	"testing"

	"protogonos/internal/model"
	"protogonos/internal/xsconst"
)

func TestSabInelasticBelowFirstGridPointSaturates(t *testing.T) {
	grid := []float64{1, 2, 3}
	xs := []float64{10, 20, 30}
	if got := sabInelastic(grid, xs, 0.1); got != 10 {
		t.Fatalf("got %v, want 10", got)
	}
}

func TestSabInelasticInterpolatesBetweenGridPoints(t *testing.T) {
	grid := []float64{1, 2, 3}
	xs := []float64{10, 20, 30}
	got := sabInelastic(grid, xs, 2.5)
	if math.Abs(got-25) > 1e-9 {
		t.Fatalf("got %v, want 25", got)
	}
}

func TestSabInelasticEmptyGridReturnsZero(t *testing.T) {
	if got := sabInelastic(nil, nil, 1); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestSabElasticAboveThresholdIsZero(t *testing.T) {
	table := model.SabTemperatureTable{ThresholdElastic: 1.0}
	if got := sabElastic(table, 2.0); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestSabElasticExactModeDividesCumulativeByEnergy(t *testing.T) {
	table := model.SabTemperatureTable{
		ThresholdElastic: 10,
		ElasticGrid:      []float64{1, 2, 3},
		ElasticP:         []float64{2, 4, 6},
		ElasticMode:      xsconst.SabElasticExact,
	}
	got := sabElastic(table, 2.5)
	want := table.ElasticP[1] / 2.5 // bracket lands on grid[1]=2, no interpolation
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSabElasticExactModeBelowFirstGridPointIsZero(t *testing.T) {
	table := model.SabTemperatureTable{
		ThresholdElastic: 10,
		ElasticGrid:      []float64{1, 2, 3},
		ElasticP:         []float64{2, 4, 6},
		ElasticMode:      xsconst.SabElasticExact,
	}
	if got := sabElastic(table, 0.5); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestSabElasticIncoherentModeInterpolates(t *testing.T) {
	table := model.SabTemperatureTable{
		ThresholdElastic: 10,
		ElasticGrid:      []float64{1, 2, 3},
		ElasticP:         []float64{2, 4, 6},
		ElasticMode:      xsconst.SabElasticIncoherent,
	}
	got := sabElastic(table, 2.5)
	want := 5.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSabElasticIncoherentModeBelowFirstGridPointSaturates(t *testing.T) {
	table := model.SabTemperatureTable{
		ThresholdElastic: 10,
		ElasticGrid:      []float64{1, 2, 3},
		ElasticP:         []float64{2, 4, 6},
		ElasticMode:      xsconst.SabElasticIncoherent,
	}
	if got := sabElastic(table, 0.1); got != 2 {
		t.Fatalf("got %v, want 2", got)
	}
}

func TestSelectSabTemperatureNearestFallsBackToArgminOutsideTolerance(t *testing.T) {
	sab := &model.SabTable{KTs: []float64{0.025, 0.05, 0.1}}

	e := NewEvaluator(DefaultConfig())
	e.Config.TemperatureMethod = TemperatureNearest

	// 0.07 is outside every table's tight default tolerance, so the scan
	// must fall back to the true argmin (0.05, index 2) rather than
	// pinning to the first table.
	got := e.selectSabTemperature(sab, math.Sqrt(0.07), &constRNG{value: 0})
	if got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestSabEvalRewritesTotalAndElasticFromThermalComponents(t *testing.T) {
	nuc := &model.Nuclide{
		KTs: []float64{0.025},
		Tables: []model.TemperatureTable{
			{Elastic: []float64{5, 5, 5, 5}},
		},
	}
	sab := &model.SabTable{
		KTs: []float64{0.025},
		Tables: []model.SabTemperatureTable{
			{
				InelasticGrid:    []float64{1, 2, 3},
				InelasticXS:      []float64{1, 2, 3},
				ElasticGrid:      []float64{1, 2, 3},
				ElasticP:         []float64{2, 4, 6},
				ElasticMode:      xsconst.SabElasticIncoherent,
				ThresholdElastic: 10,
			},
		},
	}
	cache := &model.MicroCacheEntry{
		Total:        100,
		Absorption:   10,
		IndexTemp:    1,
		IndexGrid:    2,
		InterpFactor: 0.0,
	}

	e := NewEvaluator(DefaultConfig())
	e.Config.TemperatureMethod = TemperatureNearest
	e.SabEval(nuc, sab, cache, 2.0, 0.158113883, 1, 0.5, &constRNG{value: 0})

	if cache.IndexSab != 1 {
		t.Errorf("IndexSab = %d, want 1", cache.IndexSab)
	}
	if cache.SabFrac != 0.5 {
		t.Errorf("SabFrac = %v, want 0.5", cache.SabFrac)
	}
	wantThermal := 0.5 * (sabElastic(sab.Tables[0], 2.0) + sabInelastic(sab.Tables[0].InelasticGrid, sab.Tables[0].InelasticXS, 2.0))
	if math.Abs(cache.Thermal-wantThermal) > 1e-9 {
		t.Errorf("Thermal = %v, want %v", cache.Thermal, wantThermal)
	}
}
