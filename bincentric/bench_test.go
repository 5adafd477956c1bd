// Package bincentric_test — benchmarks for the Bin-Centric Score family.
package bincentric_test

import (
	"testing"

	"github.com/katalvlaran/vbpp/bincentric"
	"github.com/katalvlaran/vbpp/core"
	"github.com/katalvlaran/vbpp/wms"
)

func buildBenchInstance(n int) *core.Instance {
	caps := []int64{100, 100, 100}
	sizes := make([][]int64, n)
	for i := 0; i < n; i++ {
		sizes[i] = []int64{
			int64(5 + (i*7)%40),
			int64(5 + (i*11)%40),
			int64(5 + (i*13)%40),
		}
	}
	inst, err := core.NewInstance("bench", 3, caps, sizes, core.WithShuffleSeed(42))
	if err != nil {
		panic(err)
	}
	return inst
}

// BenchmarkSolve_DotProduct1_Static measures the cheapest bin-centric
// configuration: static weights, the plain dot-product score.
func BenchmarkSolve_DotProduct1_Static(b *testing.B) {
	inst := buildBenchInstance(300)
	algo := bincentric.Algo{Score: wms.DotProduct1, Weight: wms.Unit}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bincentric.Solve(inst, algo)
	}
}

// BenchmarkSolve_NormDotProduct_Dynamic measures the most expensive
// configuration: dynamic weight re-evaluation before every placement.
func BenchmarkSolve_NormDotProduct_Dynamic(b *testing.B) {
	inst := buildBenchInstance(300)
	algo := bincentric.Algo{Score: wms.NormDotProduct, Weight: wms.Average, Dynamic: true}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bincentric.Solve(inst, algo)
	}
}
