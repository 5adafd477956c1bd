package wms_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vbpp/wms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseContext() wms.Context {
	return wms.Context{
		Weights:         []float64{1, 1},
		ItemNorm:        []float64{0.3, 0.2},
		BinResidualNorm: []float64{0.5, 0.5},
		MaxCaps:         []int64{10, 10},
		ResidCaps:       []int64{5, 5},
	}
}

func TestComputeScore_InfeasibleIsSkipped(t *testing.T) {
	ctx := baseContext()
	ctx.ItemNorm = []float64{0.9, 0.1}
	_, ok := wms.ComputeScore(wms.DotProduct1, ctx)
	assert.False(t, ok)
}

func TestComputeScore_DotProduct1(t *testing.T) {
	ctx := baseContext()
	got, ok := wms.ComputeScore(wms.DotProduct1, ctx)
	require.True(t, ok)
	assert.InDelta(t, 0.3*0.5+0.2*0.5, got, 1e-12)
}

func TestComputeScore_DotProduct2_MatchesManualNormalization(t *testing.T) {
	ctx := baseContext()
	dp1, _ := wms.ComputeScore(wms.DotProduct1, ctx)
	sNorm := math.Sqrt(0.3*0.3 + 0.2*0.2)
	rNorm := math.Sqrt(0.5*0.5 + 0.5*0.5)

	got, ok := wms.ComputeScore(wms.DotProduct2, ctx)
	require.True(t, ok)
	assert.InDelta(t, dp1/(sNorm*rNorm), got, 1e-9)
}

func TestComputeScore_DotProduct2_UsesCachedNorms(t *testing.T) {
	ctx := baseContext()
	ctx.ItemInvNorm2 = 1.0 / math.Sqrt(0.3*0.3+0.2*0.2)
	ctx.BinNorm2 = math.Sqrt(0.5*0.5 + 0.5*0.5)
	got, ok := wms.ComputeScore(wms.DotProduct2, ctx)
	require.True(t, ok)

	ctxFresh := baseContext()
	want, _ := wms.ComputeScore(wms.DotProduct2, ctxFresh)
	assert.InDelta(t, want, got, 1e-9)
}

func TestComputeScore_NormDotProduct_SkipsZeroAggregateDimensions(t *testing.T) {
	ctx := baseContext()
	ctx.TotalNormSize = []float64{1e-6, 1.0}
	ctx.TotalNormResidual = []float64{1.0, 1.0}
	got, ok := wms.ComputeScore(wms.NormDotProduct, ctx)
	require.True(t, ok)
	// dim 0 excluded (total_norm_size below threshold); only dim 1 contributes.
	assert.InDelta(t, ctx.Weights[1]*ctx.ItemNorm[1]*ctx.BinResidualNorm[1]/(1.0*1.0), got, 1e-12)
}

func TestComputeScore_L2Norm_IsNegatedSquaredGap(t *testing.T) {
	ctx := baseContext()
	got, ok := wms.ComputeScore(wms.L2Norm, ctx)
	require.True(t, ok)
	want := -((0.5-0.3)*(0.5-0.3) + (0.5-0.2)*(0.5-0.2))
	assert.InDelta(t, want, got, 1e-12)
}

func TestComputeScore_TightFillSum(t *testing.T) {
	ctx := baseContext()
	got, ok := wms.ComputeScore(wms.TightFillSum, ctx)
	require.True(t, ok)
	want := 1*0.3*10/5 + 1*0.2*10/5
	assert.InDelta(t, want, got, 1e-12)
}

func TestComputeScore_TightFillSum_ZeroResidualNeverNaN(t *testing.T) {
	ctx := baseContext()
	ctx.ItemNorm = []float64{0, 0.2}
	ctx.ResidCaps = []int64{0, 5}
	got, ok := wms.ComputeScore(wms.TightFillSum, ctx)
	require.True(t, ok)
	assert.False(t, math.IsNaN(got))
	assert.InDelta(t, 1*0.2*10/5, got, 1e-12)
}

func TestComputeScore_TightFillMin(t *testing.T) {
	ctx := baseContext()
	ctx.Weights = []float64{1, 2}
	got, ok := wms.ComputeScore(wms.TightFillMin, ctx)
	require.True(t, ok)
	t1 := 1 * 0.3 * 10 / 5.0
	t2 := 2 * 0.2 * 10 / 5.0
	assert.InDelta(t, math.Min(t1, t2), got, 1e-12)
}

func TestComputeScore_TightFillMin_AllZeroWeights(t *testing.T) {
	ctx := baseContext()
	ctx.Weights = []float64{0, 0}
	got, ok := wms.ComputeScore(wms.TightFillMin, ctx)
	require.True(t, ok)
	assert.Equal(t, 0.0, got)
}
