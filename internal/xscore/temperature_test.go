package xscore

import (
	"testing"

	"protogonos/internal/model"
)

// constRNG is a model.RNGStream stub whose Sample() always returns a fixed
// value, letting tests pin the stochastic-interpolation draw.
type constRNG struct {
	value float64
}

func (c *constRNG) SetStream(id int) int        { return 0 }
func (c *constRNG) FuturePRN(key int64) float64 { return c.value }
func (c *constRNG) Sample() float64             { return c.value }

func TestStochasticTemperatureIndexSingleEntryClamps(t *testing.T) {
	kTs := []float64{0.025}
	if got := stochasticTemperatureIndex(kTs, 10.0, &constRNG{value: 0.5}); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestStochasticTemperatureIndexBelowFirstClamps(t *testing.T) {
	kTs := []float64{0.025, 0.05, 0.1}
	if got := stochasticTemperatureIndex(kTs, 0.01, &constRNG{value: 0.99}); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestStochasticTemperatureIndexAboveLastClamps(t *testing.T) {
	kTs := []float64{0.025, 0.05, 0.1}
	if got := stochasticTemperatureIndex(kTs, 1.0, &constRNG{value: 0.01}); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestStochasticTemperatureIndexAdvancesWhenFractionExceedsDraw(t *testing.T) {
	kTs := []float64{0.0, 1.0}
	// kT=0.75 brackets at i=1, f=0.75. A draw of 0.5 is below f, so the
	// rule advances to the upper temperature index.
	if got := stochasticTemperatureIndex(kTs, 0.75, &constRNG{value: 0.5}); got != 2 {
		t.Fatalf("got %d, want 2 (advance)", got)
	}
}

func TestStochasticTemperatureIndexStaysWhenDrawExceedsFraction(t *testing.T) {
	kTs := []float64{0.0, 1.0}
	// Same bracket, but the draw now exceeds f=0.75, so it stays at the
	// lower temperature index.
	if got := stochasticTemperatureIndex(kTs, 0.75, &constRNG{value: 0.9}); got != 1 {
		t.Fatalf("got %d, want 1 (stay)", got)
	}
}

func TestSelectNuclideTemperatureNearestPicksClosest(t *testing.T) {
	e := NewEvaluator(DefaultConfig())
	e.Config.TemperatureMethod = TemperatureNearest
	nuc := &model.Nuclide{KTs: []float64{0.01, 0.025, 0.05}}

	sqrtKT := 0.025 // kT = 0.000625, closest to nuc.KTs[0]=0.01? check distances
	got := e.selectNuclideTemperature(nuc, sqrtKT, &constRNG{value: 0})
	// kT = sqrtKT^2 = 0.000625; distances: |0.01-0.000625|=0.009375,
	// |0.025-0.000625|=0.024375, |0.05-0.000625|=0.049375 -> index 1 nearest.
	if got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestSelectNuclideTemperatureInterpolatedDelegatesToStochastic(t *testing.T) {
	e := NewEvaluator(DefaultConfig())
	e.Config.TemperatureMethod = TemperatureInterpolated
	nuc := &model.Nuclide{KTs: []float64{0.0, 1.0}}

	// sqrtKT=1 -> kT=1, at or above the last entry: must clamp to len(KTs).
	got := e.selectNuclideTemperature(nuc, 1.0, &constRNG{value: 0.5})
	if got != len(nuc.KTs) {
		t.Fatalf("got %d, want %d", got, len(nuc.KTs))
	}
}
