package xsengine

import (
	"fmt"
	"math"
	"math/rand"

	"protogonos/internal/model"
)

// roomTemperatureKT is k_B * 293.6 K expressed in eV, the conventional
// reference temperature nuclear data libraries tabulate at.
const roomTemperatureKT = 0.0253

// sliceSource is the minimal xscore.NuclideSource backing the synthetic
// fixtures xscoreprobe builds in place of loading real nuclear data
// files, which this core's scope excludes.
type sliceSource struct {
	nuclides []*model.Nuclide
	sab      []*model.SabTable
}

func (s *sliceSource) Nuclide(index int) *model.Nuclide {
	if index < 0 || index >= len(s.nuclides) {
		return nil
	}
	return s.nuclides[index]
}

func (s *sliceSource) Sab(index int) *model.SabTable {
	if index < 0 || index >= len(s.sab) {
		return nil
	}
	return s.sab[index]
}

// BuildSyntheticMaterial assembles an in-memory material of nuclideCount
// tabulated nuclides spanning 1e-5 eV to 1e6 eV, deterministic in seed,
// along with the micro cache slots MaterialXS requires one of per
// constituent.
func BuildSyntheticMaterial(nuclideCount int, seed int64) (*model.Material, *sliceSource, []*model.MicroCacheEntry) {
	if nuclideCount < 1 {
		nuclideCount = 1
	}
	r := rand.New(rand.NewSource(seed))

	src := &sliceSource{nuclides: make([]*model.Nuclide, nuclideCount)}
	mat := &model.Material{
		NuclideIndex: make([]int, nuclideCount),
		AtomDensity:  make([]float64, nuclideCount),
	}
	micro := make([]*model.MicroCacheEntry, nuclideCount)

	for i := 0; i < nuclideCount; i++ {
		src.nuclides[i] = syntheticNuclide(fmt.Sprintf("XS-%d", i), r)
		mat.NuclideIndex[i] = i
		mat.AtomDensity[i] = 1e-2 * (1 + r.Float64())
		micro[i] = &model.MicroCacheEntry{}
	}
	return mat, src, micro
}

// syntheticNuclide builds one tabulated nuclide on a 200-point
// logarithmic energy grid with a smoothly varying 1/v-like total cross
// section plus a mild resonance bump, and a single tabulated temperature
// at room temperature.
func syntheticNuclide(name string, r *rand.Rand) *model.Nuclide {
	const nPoints = 200
	grid := make([]float64, nPoints)
	total := make([]float64, nPoints)
	absorption := make([]float64, nPoints)
	elastic := make([]float64, nPoints)

	logMin, logMax := math.Log(1e-5), math.Log(1e6)
	resonanceEnergy := math.Exp(logMin + r.Float64()*(logMax-logMin))
	baseline := 1 + 4*r.Float64()

	for i := 0; i < nPoints; i++ {
		frac := float64(i) / float64(nPoints-1)
		e := math.Exp(logMin + frac*(logMax-logMin))
		grid[i] = e

		oneOverV := baseline / math.Sqrt(e)
		delta := e - resonanceEnergy
		width := resonanceEnergy*0.05 + 1e-10
		resonance := 20 * width * width / (delta*delta + width*width)

		absorption[i] = oneOverV + resonance
		elastic[i] = baseline * 0.5
		total[i] = absorption[i] + elastic[i]
	}

	return &model.Nuclide{
		Name:       name,
		KTs:        []float64{roomTemperatureKT},
		LogSpacing: 0.23025850929940458,
		EnergyMin:  1e-5,
		Tables: []model.TemperatureTable{{
			Grid:       grid,
			GridIndex:  syntheticBucketMap(grid, 1e-5, 0.23025850929940458),
			Total:      total,
			Absorption: absorption,
			Elastic:    elastic,
		}},
	}
}

// syntheticBucketMap builds the shared logarithmic bucket map
// (spec §4.1 step 3, §4.2) for a grid spanning the whole bucket range in
// one contiguous run, since the synthetic grid has no temperature-local
// gaps to distinguish.
func syntheticBucketMap(grid []float64, energyMin, logSpacing float64) [][2]int {
	if len(grid) == 0 {
		return nil
	}
	last := grid[len(grid)-1]
	maxBucket := 0
	if last > energyMin {
		maxBucket = int(math.Floor(math.Log(last/energyMin) / logSpacing))
	}
	buckets := make([][2]int, maxBucket+1)
	for i := range buckets {
		buckets[i] = [2]int{1, len(grid) - 1}
	}
	return buckets
}
