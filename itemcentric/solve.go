package itemcentric

import (
	"sort"

	"github.com/katalvlaran/vbpp/core"
	"github.com/katalvlaran/vbpp/wms"
)

// Solve runs the Item-Centric Fit family: items are scanned in an order
// Algo.ItemOrder selects (optionally re-evaluated after each placement when
// Algo.Dynamic is set), each placed into the first bin Algo.BinOrder's
// current ordering offers that fits it, and a new bin is opened when none
// does. Bins are re-ordered after every placement whenever
// Algo.BinOrder != BinOrderNone, mirroring the original's unconditional
// sortBins() call for every "BF-type" variant.
//
// Grounded on original_source/src/algos/algos_ItemCentric.cpp's
// AlgoFit::solveInstance main loop.
//
// Complexity: O(n^2*d) in the worst case (no bin ever rejected on the
// first scan and every placement triggers a full item/bin resort).
func Solve(inst *core.Instance, algo Algo) (core.Solution, error) {
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

	itemDynamic := algo.Dynamic || (algo.ItemOrder == ItemOrderMeasure && algo.Weight.IsRatio())

	// itemMeasure[i] tracks items[i]'s current sort key; only meaningful
	// when ItemOrder == ItemOrderMeasure or ItemOrderRank.
	itemMeasure := make([]float64, n)

	// currentItemWeights is the most recently computed item-side weight
	// vector. The T1-style bin measure (BinOrder set, BinWeighted false)
	// reuses it exactly as the original's updateBinMeasure reuses
	// weights_list rather than recomputing a bin-side vector: that
	// combination only ever arises alongside ItemOrderMeasure (BFD_T1/
	// WFD_T1 both extend AlgoFFD), so it is always populated when read.
	currentItemWeights := make([]float64, dim)
	for h := range currentItemWeights {
		currentItemWeights[h] = 1
	}

	orderItems := func(lo int) {
		switch algo.ItemOrder {
		case ItemOrderNone:
			// placement order only
		case ItemOrderLexico:
			sortItemsLexicoDesc(items[lo:])
		case ItemOrderRank:
			computeItemRankMeasures(items[lo:], itemMeasure[lo:], dim)
			sortItemsByMeasureDesc(items[lo:], itemMeasure[lo:])
		case ItemOrderMeasure:
			currentItemWeights = wms.ComputeWeights(algo.Weight, dim, wms.Aggregates{
				TotalNormSize:     totalNormSize,
				TotalNormResidual: totalNormResidual,
				N:                 n - lo,
			})
			for i := lo; i < n; i++ {
				itemMeasure[i] = wms.ComputeMeasure(algo.Measure, currentItemWeights, items[i].NormSizes)
			}
			sortItemsByMeasureDesc(items[lo:], itemMeasure[lo:])
		}
	}

	// Initial ordering over the whole list.
	orderItems(0)

	var bins []*core.Bin
	nextBinID := 0

	createBin := func() *core.Bin {
		b := core.NewBin(nextBinID, maxCaps)
		nextBinID++
		if algo.NewBinAtFront {
			bins = append([]*core.Bin{b}, bins...)
		} else {
			bins = append(bins, b)
		}
		for h := 0; h < dim; h++ {
			totalNormResidual[h] += 1
		}
		return b
	}

	resortBins := func() {
		if algo.BinOrder == BinOrderNone {
			return
		}
		ascending := algo.BinOrder == BinOrderAsc

		// Lexico and Rank bin-order variants use a weight-free residual
		// comparator of their own, matching the original constructors
		// they're grounded on (neither takes a weight/combination
		// parameter).
		switch algo.ItemOrder {
		case ItemOrderLexico:
			sortBinsLexico(bins, ascending)
			return
		case ItemOrderRank:
			measure := make([]float64, len(bins))
			computeBinRankMeasures(bins, measure, dim)
			sortBinsByMeasure(bins, measure, ascending)
			return
		}

		var weights []float64
		if algo.BinWeighted {
			weights = wms.ComputeWeights(algo.BinWeight, dim, wms.Aggregates{
				TotalNormSize:     totalNormResidual,
				TotalNormResidual: totalNormResidual,
				N:                 len(bins),
			})
		} else {
			// T1-style: reuse the item-side weight vector (see
			// currentItemWeights' doc comment above).
			weights = currentItemWeights
		}

		measure := make([]float64, len(bins))
		for i, b := range bins {
			x := make([]float64, dim)
			if algo.Measure == wms.L2Load {
				for h := 0; h < dim; h++ {
					x[h] = float64(maxCaps[h]-b.AvailCaps[h]) / float64(maxCaps[h])
				}
			} else {
				for h := 0; h < dim; h++ {
					x[h] = float64(b.AvailCaps[h]) / float64(maxCaps[h])
				}
			}
			measure[i] = wms.ComputeMeasure(algo.Measure, weights, x)
		}

		sortBinsByMeasure(bins, measure, ascending)
	}

	for i := 0; i < n; i++ {
		item := items[i]

		var target *core.Bin
		for _, b := range bins {
			if b.Fits(item.Sizes) {
				target = b
				break
			}
		}

		// An item that does not fit even an empty bin keeps opening bins
		// until the runaway guard trips.
		for target == nil {
			if len(bins) > n {
				return core.Solution{}, ErrRunawayBinGrowth
			}
			if b := createBin(); b.Fits(item.Sizes) {
				target = b
			}
		}

		target.AddUnchecked(item)
		for h := 0; h < dim; h++ {
			totalNormSize[h] -= item.NormSizes[h]
			totalNormResidual[h] -= item.NormSizes[h]
		}

		if algo.BinOrder != BinOrderNone {
			resortBins()
		}
		if itemDynamic && i+1 < n {
			orderItems(i + 1)
		}
	}

	if len(bins) > n {
		return core.Solution{}, ErrRunawayBinGrowth
	}

	return core.Snapshot(bins), nil
}

func sortItemsByMeasureDesc(items []core.Item, measure []float64) {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return measure[idx[a]] > measure[idx[b]] })
	applyItemPermutation(items, measure, idx)
}

func sortItemsLexicoDesc(items []core.Item) {
	sort.SliceStable(items, func(a, b int) bool {
		return lexicoLess(items[b].Sizes, items[a].Sizes)
	})
}

// lexicoLess reports whether a precedes b in increasing lexicographic
// order of their dimension-by-dimension raw sizes.
func lexicoLess(a, b []int64) bool {
	for h := range a {
		if a[h] != b[h] {
			return a[h] < b[h]
		}
	}
	return false
}

// computeItemRankMeasures fills measure[i] with the sum, over every
// dimension, of item i's 0-based rank when the slice is ordered
// increasing by size in that dimension.
func computeItemRankMeasures(items []core.Item, measure []float64, dim int) {
	for i := range measure {
		measure[i] = 0
	}
	n := len(items)
	idx := make([]int, n)
	for h := 0; h < dim; h++ {
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return items[idx[a]].Sizes[h] < items[idx[b]].Sizes[h] })
		for rank, originalIdx := range idx {
			measure[originalIdx] += float64(rank)
		}
	}
}

// sortBinsLexico orders bins by their raw residual-capacity vector,
// compared dimension by dimension left to right: ascending for Best-Fit
// (tightest residual first), descending for Worst-Fit (emptiest first).
// Grounded on original_source/src/lib/bin.cpp's
// bin_comparator_lexicographic_increasing/decreasing, which compares raw
// residual capacities with no weight.
func sortBinsLexico(bins []*core.Bin, ascending bool) {
	sort.SliceStable(bins, func(a, b int) bool {
		if ascending {
			return lexicoLess(bins[a].AvailCaps, bins[b].AvailCaps)
		}
		return lexicoLess(bins[b].AvailCaps, bins[a].AvailCaps)
	})
}

// computeBinRankMeasures fills measure[i] with the sum, over every
// dimension, of bin i's 0-based rank when the bin list is ordered
// increasing by residual capacity in that dimension. Grounded on
// original_source/src/algos/algos_ItemCentric.cpp's
// AlgoBFD_Rank/AlgoWFD_Rank::sortBins, a residual-capacity analog of
// computeItemRankMeasures with no weight input.
func computeBinRankMeasures(bins []*core.Bin, measure []float64, dim int) {
	for i := range measure {
		measure[i] = 0
	}
	n := len(bins)
	idx := make([]int, n)
	for h := 0; h < dim; h++ {
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return bins[idx[a]].AvailCaps[h] < bins[idx[b]].AvailCaps[h] })
		for rank, originalIdx := range idx {
			measure[originalIdx] += float64(rank)
		}
	}
}

func applyItemPermutation(items []core.Item, measure []float64, idx []int) {
	outItems := make([]core.Item, len(items))
	outMeasure := make([]float64, len(measure))
	for newPos, oldPos := range idx {
		outItems[newPos] = items[oldPos]
		outMeasure[newPos] = measure[oldPos]
	}
	copy(items, outItems)
	copy(measure, outMeasure)
}

func sortBinsByMeasure(bins []*core.Bin, measure []float64, ascending bool) {
	idx := make([]int, len(bins))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if ascending {
			return measure[idx[a]] < measure[idx[b]]
		}
		return measure[idx[a]] > measure[idx[b]]
	})
	out := make([]*core.Bin, len(bins))
	for newPos, oldPos := range idx {
		out[newPos] = bins[oldPos]
	}
	copy(bins, out)
}
