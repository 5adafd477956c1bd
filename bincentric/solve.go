package bincentric

import (
	"math"

	"github.com/katalvlaran/vbpp/core"
	"github.com/katalvlaran/vbpp/wms"
)

// Solve runs the Bin-Centric Score family: repeatedly, against the current
// open bin, scan the unplaced items and place the highest-scoring feasible
// one; open a new bin when none fits.
//
// Grounded on original_source/src/algos/algos_BinCentric.cpp's
// AlgoBinCentric::solveInstance.
//
// Complexity: O(n^2*d) in the worst case.
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

	if n == 0 {
		return core.Solution{}, nil
	}

	dynamic := algo.Dynamic || algo.Weight.IsRatio() || algo.BinWeighted

	var bins []*core.Bin
	nextBinID := 0

	createBin := func() *core.Bin {
		b := core.NewBin(nextBinID, maxCaps)
		nextBinID++
		bins = append(bins, b)
		for h := 0; h < dim; h++ {
			totalNormResidual[h] += 1
		}
		return b
	}

	weights := make([]float64, dim)
	computeWeights := func(remaining int) {
		switch {
		case algo.Weight.IsRatio():
			weights = wms.ComputeWeights(algo.Weight, dim, wms.Aggregates{
				TotalNormSize:     totalNormSize,
				TotalNormResidual: totalNormResidual,
				N:                 remaining,
			})
		case algo.BinWeighted:
			weights = wms.ComputeWeights(algo.Weight, dim, wms.Aggregates{
				TotalNormSize:     totalNormResidual,
				TotalNormResidual: totalNormResidual,
				N:                 len(bins),
			})
		default:
			weights = wms.ComputeWeights(algo.Weight, dim, wms.Aggregates{
				TotalNormSize:     totalNormSize,
				TotalNormResidual: totalNormResidual,
				N:                 remaining,
			})
		}
	}

	// The first bin is opened unconditionally once n > 0 is known,
	// mirroring the original's unguarded createNewBin() call before the
	// main loop; the runaway guard only applies to bins opened because no
	// unplaced item fit the current one.
	curr := createBin()

	if !dynamic {
		computeWeights(n)
	}

	placed := 0
	for placed < n {
		remaining := n - placed
		if dynamic {
			computeWeights(remaining)
		}

		residNorm := make([]float64, dim)
		for h := 0; h < dim; h++ {
			residNorm[h] = float64(curr.AvailCaps[h]) / float64(maxCaps[h])
		}

		bestIdx := -1
		bestScore := math.Inf(-1)
		for i := placed; i < n; i++ {
			item := items[i]
			if !curr.Fits(item.Sizes) {
				continue
			}
			ctx := wms.Context{
				Weights:           weights,
				ItemNorm:          item.NormSizes,
				BinResidualNorm:   residNorm,
				MaxCaps:           maxCaps,
				ResidCaps:         curr.AvailCaps,
				TotalNormSize:     totalNormSize,
				TotalNormResidual: totalNormResidual,
			}
			s, ok := wms.ComputeScore(algo.Score, ctx)
			if !ok {
				continue
			}
			if s > bestScore {
				bestScore = s
				bestIdx = i
			}
		}

		if bestIdx == -1 {
			curr = createBin()
			if len(bins) > n {
				return core.Solution{}, ErrRunawayBinGrowth
			}
			continue
		}

		item := items[bestIdx]
		curr.AddUnchecked(item)
		for h := 0; h < dim; h++ {
			totalNormResidual[h] -= item.NormSizes[h]
			if dynamic {
				totalNormSize[h] -= item.NormSizes[h]
			}
		}

		items[placed], items[bestIdx] = items[bestIdx], items[placed]
		placed++
	}

	return core.Snapshot(bins), nil
}
