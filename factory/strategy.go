package factory

import (
	"github.com/katalvlaran/vbpp/bincentric"
	"github.com/katalvlaran/vbpp/core"
	"github.com/katalvlaran/vbpp/itemcentric"
	"github.com/katalvlaran/vbpp/multibin"
)

// itemCentricStrategy wraps the Item-Centric Fit family behind Strategy.
type itemCentricStrategy struct {
	name string
	algo itemcentric.Algo
}

func (s itemCentricStrategy) Name() string { return s.name }

func (s itemCentricStrategy) SolveSingle(inst *core.Instance) (core.Solution, error) {
	return itemcentric.Solve(inst, s.algo)
}

func (s itemCentricStrategy) SolveMulti(*core.Instance, int, int) (core.Solution, int, error) {
	return core.Solution{}, -1, ErrContractViolation
}

// binCentricStrategy wraps the Bin-Centric Score family behind Strategy.
type binCentricStrategy struct {
	name string
	algo bincentric.Algo
}

func (s binCentricStrategy) Name() string { return s.name }

func (s binCentricStrategy) SolveSingle(inst *core.Instance) (core.Solution, error) {
	return bincentric.Solve(inst, s.algo)
}

func (s binCentricStrategy) SolveMulti(*core.Instance, int, int) (core.Solution, int, error) {
	return core.Solution{}, -1, ErrContractViolation
}

// multiBinStrategy wraps one multibin.Inner plus its outer search policy.
type multiBinStrategy struct {
	name         string
	inner        multibin.Inner
	search       multibin.Search
	incrementPct int
}

func (s multiBinStrategy) Name() string { return s.name }

func (s multiBinStrategy) SolveSingle(*core.Instance) (core.Solution, error) {
	return core.Solution{}, ErrContractViolation
}

func (s multiBinStrategy) SolveMulti(inst *core.Instance, lb, ub int) (core.Solution, int, error) {
	return multibin.SolveWithBounds(inst, s.inner, s.search, s.incrementPct, lb, ub)
}

// lowerBoundStrategy wraps a package bound function as a Strategy: its
// SolveSingle reports the bound as a bin count via NumBins(), with every
// bin left empty since a lower bound is a count, not a packing.
type lowerBoundStrategy struct {
	name string
	fn   func(*core.Instance) int
}

func (s lowerBoundStrategy) Name() string { return s.name }

func (s lowerBoundStrategy) SolveSingle(inst *core.Instance) (core.Solution, error) {
	n := s.fn(inst)
	bins := make([]core.BinSnapshot, n)
	for i := range bins {
		bins[i] = core.BinSnapshot{ID: i}
	}
	return core.Solution{Bins: bins}, nil
}

func (s lowerBoundStrategy) SolveMulti(*core.Instance, int, int) (core.Solution, int, error) {
	return core.Solution{}, -1, ErrContractViolation
}
