package factory_test

import (
	"fmt"

	"github.com/katalvlaran/vbpp/core"
	"github.com/katalvlaran/vbpp/factory"
	"github.com/katalvlaran/vbpp/wms"
)

// ExampleNew builds an FFD strategy from a structured Descriptor and runs
// it against a small instance.
func ExampleNew() {
	inst, err := core.NewInstance("example", 2, []int64{10, 10}, [][]int64{
		{6, 2}, {5, 5}, {4, 8}, {3, 3},
	})
	if err != nil {
		fmt.Println("build error:", err)
		return
	}

	strat, err := factory.New(factory.Descriptor{Kind: factory.FFD, Measure: wms.L1, Weight: wms.Average})
	if err != nil {
		fmt.Println("factory error:", err)
		return
	}

	sol, err := strat.SolveSingle(inst)
	if err != nil {
		fmt.Println("solve error:", err)
		return
	}
	fmt.Println(sol.NumBins())
	// Output: 2
}
