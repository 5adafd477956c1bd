package itemcentric

import (
	"testing"

	"github.com/katalvlaran/vbpp/core"
	"github.com/stretchr/testify/assert"
)

func TestBubbleUpWhile_RelocatesTailElement(t *testing.T) {
	vals := []int{1, 2, 3, 9}
	less := func(i, j int) bool { return vals[i] > vals[j] }
	swap := func(i, j int) { vals[i], vals[j] = vals[j], vals[i] }

	bubbleUpWhile(len(vals), less, swap)

	assert.Equal(t, []int{9, 1, 2, 3}, vals)
}

func TestBubbleUpWhile_AlreadyOrdered_NoOp(t *testing.T) {
	vals := []int{5, 4, 3, 2}
	less := func(i, j int) bool { return vals[i] > vals[j] }
	swap := func(i, j int) { vals[i], vals[j] = vals[j], vals[i] }

	bubbleUpWhile(len(vals), less, swap)

	assert.Equal(t, []int{5, 4, 3, 2}, vals)
}

func TestBubbleDownWhile_RelocatesHeadElement(t *testing.T) {
	vals := []int{9, 1, 2, 3}
	less := func(i, j int) bool { return vals[i] < vals[j] }
	swap := func(i, j int) { vals[i], vals[j] = vals[j], vals[i] }

	bubbleDownWhile(len(vals), less, swap)

	assert.Equal(t, []int{1, 2, 3, 9}, vals)
}

func TestBubbleUpDownWhile_SingleElement_NoOp(t *testing.T) {
	vals := []int{1}
	less := func(i, j int) bool { return vals[i] > vals[j] }
	swap := func(i, j int) { vals[i], vals[j] = vals[j], vals[i] }

	bubbleUpWhile(len(vals), less, swap)
	bubbleDownWhile(len(vals), less, swap)

	assert.Equal(t, []int{1}, vals)
}

func makeBinWithAvail(id int, avail []int64) *core.Bin {
	b := core.NewBin(id, avail)
	return b
}

func TestSortBinsLexico_Ascending_TightestResidualFirst(t *testing.T) {
	bins := []*core.Bin{
		makeBinWithAvail(0, []int64{5, 5}),
		makeBinWithAvail(1, []int64{1, 9}),
		makeBinWithAvail(2, []int64{1, 2}),
	}

	sortBinsLexico(bins, true)

	assert.Equal(t, []int{2, 1, 0}, []int{bins[0].ID, bins[1].ID, bins[2].ID})
}

func TestSortBinsLexico_Descending_EmptiestResidualFirst(t *testing.T) {
	bins := []*core.Bin{
		makeBinWithAvail(0, []int64{1, 2}),
		makeBinWithAvail(1, []int64{5, 5}),
		makeBinWithAvail(2, []int64{1, 9}),
	}

	sortBinsLexico(bins, false)

	assert.Equal(t, []int{1, 2, 0}, []int{bins[0].ID, bins[1].ID, bins[2].ID})
}

func TestComputeBinRankMeasures_SumsPerDimensionRank(t *testing.T) {
	bins := []*core.Bin{
		makeBinWithAvail(0, []int64{3, 1}), // rank 1 + rank 0 = 1
		makeBinWithAvail(1, []int64{1, 3}), // rank 0 + rank 1 = 1
		makeBinWithAvail(2, []int64{5, 5}), // rank 2 + rank 2 = 4
	}
	measure := make([]float64, 3)

	computeBinRankMeasures(bins, measure, 2)

	assert.Equal(t, []float64{1, 1, 4}, measure)
}
