package multibin

import (
	"sort"

	"github.com/katalvlaran/vbpp/core"
	"github.com/katalvlaran/vbpp/wms"
)

// trySolveFixedPool packs inst into exactly k bins using an Item-Centric
// Fit-Decreasing scan: items are ordered once by decreasing measure
// (re-ordered after every placement when dynamic is set), and each item is
// placed in the first bin of the current bin order that fits it. Bins are
// kept sorted by residual measure — descending for Worst-Fit (ascending
// false) or ascending for Best-Fit (ascending true) — after every
// placement, so "first bin that fits" realizes worst/best fit respectively.
//
// Grounded on AlgoWFDm::packItems/sortBins and AlgoBFDm_Increment::sortBins.
func trySolveFixedPool(inst *core.Instance, k int, measure wms.Measure, weight wms.Weight, dynamicFlag, binWeighted, ascending bool) (core.Solution, bool) {
	dim := inst.Dimensions()
	maxCaps := inst.BinCapacities()
	srcItems := inst.Items()
	n := len(srcItems)

	items := make([]core.Item, n)
	copy(items, srcItems)

	totalNormSize := make([]float64, dim)
	for _, it := range items {
		for h := 0; h < dim; h++ {
			totalNormSize[h] += it.NormSizes[h]
		}
	}
	totalNormResidual := make([]float64, dim)

	bins := make([]*core.Bin, 0, k)
	for i := 0; i < k; i++ {
		b := core.NewBin(i, maxCaps)
		bins = append(bins, b)
		for h := 0; h < dim; h++ {
			totalNormResidual[h] += 1
		}
	}

	dynamic := dynamicFlag || weight.IsRatio()

	itemWeights := make([]float64, dim)

	// computeItemMeasures recomputes the weight vector and every
	// unplaced item's measure (from lo onward), and returns the measures
	// indexed the same way as the items slice.
	computeItemMeasures := func(lo int) []float64 {
		itemWeights = wms.ComputeWeights(weight, dim, wms.Aggregates{
			TotalNormSize: totalNormSize, TotalNormResidual: totalNormResidual, N: n - lo,
		})
		ms := make([]float64, n)
		for i := lo; i < n; i++ {
			ms[i] = wms.ComputeMeasure(measure, itemWeights, items[i].NormSizes)
		}
		return ms
	}

	sortItemsDesc := func(lo int, ms []float64) {
		sub := items[lo:]
		subMs := ms[lo:]
		idx := make([]int, len(sub))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return subMs[idx[a]] > subMs[idx[b]] })
		ordered := make([]core.Item, len(sub))
		for i, id := range idx {
			ordered[i] = sub[id]
		}
		copy(sub, ordered)
	}

	ms := computeItemMeasures(0)
	sortItemsDesc(0, ms)

	computeBinMeasure := func(b *core.Bin) float64 {
		w := itemWeights
		if binWeighted {
			w = wms.ComputeWeights(weight, dim, wms.Aggregates{
				TotalNormSize: totalNormResidual, TotalNormResidual: totalNormResidual, N: len(bins),
			})
		}
		resid := make([]float64, dim)
		for h := 0; h < dim; h++ {
			resid[h] = float64(b.AvailCaps[h]) / float64(maxCaps[h])
		}
		return wms.ComputeMeasure(measure, w, resid)
	}

	sortBins := func() {
		type scored struct {
			b *core.Bin
			m float64
		}
		arr := make([]scored, len(bins))
		for i, b := range bins {
			arr[i] = scored{b, computeBinMeasure(b)}
		}
		sort.SliceStable(arr, func(i, j int) bool {
			if ascending {
				return arr[i].m < arr[j].m
			}
			return arr[i].m > arr[j].m
		})
		for i := range arr {
			bins[i] = arr[i].b
		}
	}
	sortBins()

	for i := 0; i < n; i++ {
		item := items[i]

		placedIdx := -1
		for j, b := range bins {
			if b.Fits(item.Sizes) {
				placedIdx = j
				break
			}
		}
		if placedIdx == -1 {
			return core.Solution{}, false
		}

		bins[placedIdx].AddUnchecked(item)
		for h := 0; h < dim; h++ {
			totalNormResidual[h] -= item.NormSizes[h]
			if dynamic {
				totalNormSize[h] -= item.NormSizes[h]
			}
		}

		if dynamic && i+1 < n {
			ms = computeItemMeasures(i + 1)
			sortItemsDesc(i+1, ms)
		}
		sortBins()
	}

	return core.Snapshot(bins), true
}

// TrySolve runs the fixed-pool Worst-Fit-Decreasing attempt.
func (a WFDm) TrySolve(inst *core.Instance, k int) (core.Solution, bool) {
	return trySolveFixedPool(inst, k, a.Measure, a.Weight, a.Dynamic, a.BinWeighted, false)
}

// TrySolve runs the fixed-pool Best-Fit-Decreasing attempt.
func (a BFDm) TrySolve(inst *core.Instance, k int) (core.Solution, bool) {
	return trySolveFixedPool(inst, k, a.Measure, a.Weight, a.Dynamic, a.BinWeighted, true)
}
