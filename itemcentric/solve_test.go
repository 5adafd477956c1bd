package itemcentric_test

import (
	"testing"

	"github.com/katalvlaran/vbpp/core"
	"github.com/katalvlaran/vbpp/itemcentric"
	"github.com/katalvlaran/vbpp/wms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertFeasible checks that every bin in sol respects caps and that every
// instance item id appears in exactly one bin.
func assertFeasible(t *testing.T, inst *core.Instance, sol core.Solution) {
	t.Helper()
	dim := inst.Dimensions()
	caps := inst.BinCapacities()
	items := inst.Items()

	seen := make(map[int]bool)
	for _, bs := range sol.Bins {
		load := make([]int64, dim)
		for _, id := range bs.Items {
			require.False(t, seen[id], "item %d assigned twice", id)
			seen[id] = true
			for h := 0; h < dim; h++ {
				load[h] += items[id].Sizes[h]
			}
		}
		for h := 0; h < dim; h++ {
			assert.LessOrEqual(t, load[h], caps[h], "bin overflows dimension %d", h)
		}
	}
	assert.Equal(t, len(items), len(seen), "every item must be assigned")
}

func scenario2() (*core.Instance, error) {
	return core.NewInstance("scenario2", 2, []int64{10, 10}, [][]int64{
		{6, 2}, {5, 5}, {4, 8}, {3, 3},
	})
}

func TestSolve_FF(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	sol, err := itemcentric.Solve(inst, itemcentric.Algo{})
	require.NoError(t, err)
	assertFeasible(t, inst, sol)
	assert.LessOrEqual(t, sol.NumBins(), 3)
}

func TestSolve_FFD_L1Average_Scenario2_PacksInto2Bins(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	algo := itemcentric.Algo{
		ItemOrder: itemcentric.ItemOrderMeasure,
		Measure:   wms.L1,
		Weight:    wms.Average,
	}
	sol, err := itemcentric.Solve(inst, algo)
	require.NoError(t, err)
	assertFeasible(t, inst, sol)
	assert.Equal(t, 2, sol.NumBins())
}

func TestSolve_BFD_T1_BestFit(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	algo := itemcentric.Algo{
		ItemOrder: itemcentric.ItemOrderMeasure,
		BinOrder:  itemcentric.BinOrderAsc,
		Measure:   wms.L1,
		Weight:    wms.Average,
	}
	sol, err := itemcentric.Solve(inst, algo)
	require.NoError(t, err)
	assertFeasible(t, inst, sol)
	assert.LessOrEqual(t, sol.NumBins(), 3)
}

func TestSolve_BFD_T2_BinWeighted(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	algo := itemcentric.Algo{
		ItemOrder:   itemcentric.ItemOrderMeasure,
		BinOrder:    itemcentric.BinOrderAsc,
		Measure:     wms.L1,
		Weight:      wms.Average,
		BinWeight:   wms.Average,
		BinWeighted: true,
	}
	sol, err := itemcentric.Solve(inst, algo)
	require.NoError(t, err)
	assertFeasible(t, inst, sol)
}

func TestSolve_WFD_T1_WorstFit_NewBinAtFront(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	algo := itemcentric.Algo{
		ItemOrder:     itemcentric.ItemOrderMeasure,
		BinOrder:      itemcentric.BinOrderDesc,
		Measure:       wms.L1,
		Weight:        wms.Average,
		NewBinAtFront: true,
	}
	sol, err := itemcentric.Solve(inst, algo)
	require.NoError(t, err)
	assertFeasible(t, inst, sol)
}

func TestSolve_BF_PlainIterationOrder(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	algo := itemcentric.Algo{
		BinOrder:    itemcentric.BinOrderAsc,
		Measure:     wms.L1,
		BinWeight:   wms.Average,
		BinWeighted: true,
	}
	sol, err := itemcentric.Solve(inst, algo)
	require.NoError(t, err)
	assertFeasible(t, inst, sol)
}

func TestSolve_Lexico(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	algo := itemcentric.Algo{
		ItemOrder: itemcentric.ItemOrderLexico,
		BinOrder:  itemcentric.BinOrderAsc,
	}
	sol, err := itemcentric.Solve(inst, algo)
	require.NoError(t, err)
	assertFeasible(t, inst, sol)
}

func TestSolve_Rank_Dynamic(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	algo := itemcentric.Algo{
		ItemOrder: itemcentric.ItemOrderRank,
		BinOrder:  itemcentric.BinOrderAsc,
		Dynamic:   true,
	}
	sol, err := itemcentric.Solve(inst, algo)
	require.NoError(t, err)
	assertFeasible(t, inst, sol)
}

func TestSolve_RatioWeightImpliesDynamic(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	algo := itemcentric.Algo{
		ItemOrder: itemcentric.ItemOrderMeasure,
		Measure:   wms.L1,
		Weight:    wms.ResidualRatio,
		Dynamic:   false, // IsRatio() must force dynamic behavior regardless
	}
	sol, err := itemcentric.Solve(inst, algo)
	require.NoError(t, err)
	assertFeasible(t, inst, sol)
}

func TestSolve_FullCapacityItems_OpensOneBinPerItem(t *testing.T) {
	inst, err := core.NewInstance("tight", 1, []int64{5}, [][]int64{{5}, {5}, {5}})
	require.NoError(t, err)

	sol, err := itemcentric.Solve(inst, itemcentric.Algo{})
	require.NoError(t, err)
	assertFeasible(t, inst, sol)
	assert.Equal(t, 3, sol.NumBins())
}

func TestSolve_EmptyInstance(t *testing.T) {
	inst, err := core.NewInstance("empty", 1, []int64{10}, nil)
	require.NoError(t, err)

	sol, err := itemcentric.Solve(inst, itemcentric.Algo{})
	require.NoError(t, err)
	assert.Equal(t, 0, sol.NumBins())
}
