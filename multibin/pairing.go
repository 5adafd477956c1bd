package multibin

import (
	"math"

	"github.com/katalvlaran/vbpp/core"
	"github.com/katalvlaran/vbpp/wms"
)

// TrySolve packs inst into exactly k bins using the Bin-Centric Score
// affinity over the whole fixed pool at once, rather than one bin at a
// time. The original's store_scores cache (sound only when the score is
// not NormDotProduct, the weight is not a ratio policy, and bins are not
// weighted) is deliberately not ported: every score is recomputed fresh on
// every pass, trading the cache's speed for a code path immune to staleness
// across all policy combinations. See DESIGN.md.
func (p Pairing) TrySolve(inst *core.Instance, k int) (core.Solution, bool) {
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

	dynamic := p.Dynamic || p.Weight.IsRatio() || p.BinWeighted

	weights := make([]float64, dim)
	computeWeights := func(remaining int) {
		switch {
		case p.Weight.IsRatio():
			weights = wms.ComputeWeights(p.Weight, dim, wms.Aggregates{
				TotalNormSize: totalNormSize, TotalNormResidual: totalNormResidual, N: remaining,
			})
		case p.BinWeighted:
			weights = wms.ComputeWeights(p.Weight, dim, wms.Aggregates{
				TotalNormSize: totalNormResidual, TotalNormResidual: totalNormResidual, N: len(bins),
			})
		default:
			weights = wms.ComputeWeights(p.Weight, dim, wms.Aggregates{
				TotalNormSize: totalNormSize, TotalNormResidual: totalNormResidual, N: remaining,
			})
		}
	}
	computeWeights(n)

	placed := 0
	for placed < n {
		bestItem, bestBin := -1, -1
		bestScore := math.Inf(-1)

		for i := placed; i < n; i++ {
			item := items[i]
			for j, b := range bins {
				if !b.Fits(item.Sizes) {
					continue
				}
				residNorm := make([]float64, dim)
				for h := 0; h < dim; h++ {
					residNorm[h] = float64(b.AvailCaps[h]) / float64(maxCaps[h])
				}
				ctx := wms.Context{
					Weights:           weights,
					ItemNorm:          item.NormSizes,
					BinResidualNorm:   residNorm,
					MaxCaps:           maxCaps,
					ResidCaps:         b.AvailCaps,
					TotalNormSize:     totalNormSize,
					TotalNormResidual: totalNormResidual,
				}
				s, ok := wms.ComputeScore(p.Score, ctx)
				if !ok {
					continue
				}
				if s > bestScore {
					bestScore = s
					bestItem = i
					bestBin = j
				}
			}
		}

		if bestItem == -1 {
			return core.Solution{}, false
		}

		item := items[bestItem]
		bins[bestBin].AddUnchecked(item)
		for h := 0; h < dim; h++ {
			totalNormResidual[h] -= item.NormSizes[h]
			if dynamic {
				totalNormSize[h] -= item.NormSizes[h]
			}
		}

		items[placed], items[bestItem] = items[bestItem], items[placed]
		placed++

		if dynamic && placed < n {
			computeWeights(n - placed)
		}
	}

	return core.Snapshot(bins), true
}
