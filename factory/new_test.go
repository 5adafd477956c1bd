package factory_test

import (
	"testing"

	"github.com/katalvlaran/vbpp/core"
	"github.com/katalvlaran/vbpp/factory"
	"github.com/katalvlaran/vbpp/wms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenario2() (*core.Instance, error) {
	return core.NewInstance("scenario2", 2, []int64{10, 10}, [][]int64{
		{6, 2}, {5, 5}, {4, 8}, {3, 3},
	})
}

func TestNew_FFD_SolveSingle(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	strat, err := factory.New(factory.Descriptor{Kind: factory.FFD, Measure: wms.L1, Weight: wms.Average})
	require.NoError(t, err)
	assert.Equal(t, "FFD", strat.Name())

	sol, err := strat.SolveSingle(inst)
	require.NoError(t, err)
	assert.Equal(t, 2, sol.NumBins())
}

func TestNew_BCS_SolveSingle(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	strat, err := factory.New(factory.Descriptor{Kind: factory.BCS, Score: wms.DotProduct1, Weight: wms.Unit})
	require.NoError(t, err)

	sol, err := strat.SolveSingle(inst)
	require.NoError(t, err)
	assert.LessOrEqual(t, sol.NumBins(), 4)
}

func TestNew_PairingIncrement_SolveMulti(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	strat, err := factory.New(factory.Descriptor{Kind: factory.PairingIncrement, Score: wms.DotProduct1, Weight: wms.Unit, IncrementPct: 50})
	require.NoError(t, err)

	sol, bins, err := strat.SolveMulti(inst, 1, 4)
	require.NoError(t, err)
	require.NotEqual(t, -1, bins)
	assert.Equal(t, bins, sol.NumBins())
}

func TestNew_BFDmBinary_SolveMulti(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	strat, err := factory.New(factory.Descriptor{Kind: factory.BFDmBinary, Measure: wms.L1, Weight: wms.Average})
	require.NoError(t, err)

	sol, bins, err := strat.SolveMulti(inst, 1, 4)
	require.NoError(t, err)
	require.NotEqual(t, -1, bins)
	assert.Equal(t, bins, sol.NumBins())
}

func TestNew_LBSum_SolveSingle(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	strat, err := factory.New(factory.Descriptor{Kind: factory.LBSum})
	require.NoError(t, err)

	sol, err := strat.SolveSingle(inst)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, sol.NumBins(), 1)
	for _, b := range sol.Bins {
		assert.Empty(t, b.Items)
	}
}

func TestNew_ContractViolation_SingleOnMultiBinKind(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	strat, err := factory.New(factory.Descriptor{Kind: factory.PairingIncrement})
	require.NoError(t, err)

	_, err = strat.SolveSingle(inst)
	assert.ErrorIs(t, err, factory.ErrContractViolation)
}

func TestNew_ContractViolation_MultiOnSingleBinKind(t *testing.T) {
	inst, err := scenario2()
	require.NoError(t, err)

	strat, err := factory.New(factory.Descriptor{Kind: factory.FF})
	require.NoError(t, err)

	_, _, err = strat.SolveMulti(inst, 1, 4)
	assert.ErrorIs(t, err, factory.ErrContractViolation)
}

func TestNew_UnsupportedDescriptor(t *testing.T) {
	_, err := factory.New(factory.Descriptor{Kind: factory.Kind(9999)})
	assert.ErrorIs(t, err, factory.ErrUnsupportedDescriptor)
}
