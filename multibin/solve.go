package multibin

import (
	"math"

	"github.com/katalvlaran/vbpp/bound"
	"github.com/katalvlaran/vbpp/core"
	"github.com/katalvlaran/vbpp/itemcentric"
)

// Solve searches for the fewest bins inner can pack inst into. The upper
// bound is the bin count First Fit (plain, undecorated) achieves on the
// same instance; the lower bound is the tighter of bound.Sum and
// bound.Clique. A non-nil error is returned only for contract violations
// (propagated from the upper-bound computation); exhausting the search
// without a feasible bin count is a normal Exhausted signal, reported as a
// bin count of -1 with a nil error, per the package's Infeasible/Exhausted
// conventions.
func Solve(inst *core.Instance, inner Inner, search Search, incrementPct int) (core.Solution, int, error) {
	ubSol, err := itemcentric.Solve(inst, itemcentric.Algo{})
	if err != nil {
		return core.Solution{}, -1, err
	}
	ub := ubSol.NumBins()

	lb := bound.Sum(inst)
	if c := bound.Clique(inst); c > lb {
		lb = c
	}
	if lb > ub {
		lb = ub
	}

	return SolveWithBounds(inst, inner, search, incrementPct, lb, ub)
}

// SolveWithBounds runs the outer bin-count search between caller-supplied
// lb and ub, skipping Solve's own bound computation. This is what
// package factory's multi-bin Strategy.SolveMulti calls, so a caller that
// already holds tighter bounds (e.g. from package bound, computed once and
// reused across several Kind attempts on the same instance) never pays for
// recomputing them.
func SolveWithBounds(inst *core.Instance, inner Inner, search Search, incrementPct, lb, ub int) (core.Solution, int, error) {
	if search == Binary {
		return solveBinary(inst, inner, lb, ub)
	}
	return solveIncrement(inst, inner, lb, ub, incrementPct)
}

// solveIncrement walks target_bins up from lb by a step derived from
// incrementPct, forcing one final attempt at ub. Grounded on
// AlgoPairing_Increment::solveInstanceMultiBin.
func solveIncrement(inst *core.Instance, inner Inner, lb, ub, incrementPct int) (core.Solution, int, error) {
	step := 1
	if incrementPct > 0 {
		step = int(math.Floor(float64(ub-lb) * float64(incrementPct) / 100.0))
		if step < 1 {
			step = 1
		}
	}

	target := lb
	sol, ok := inner.TrySolve(inst, target)
	lastTry := false
	for !ok && !lastTry {
		target += step
		if target >= ub {
			target = ub
			lastTry = true
		}
		sol, ok = inner.TrySolve(inst, target)
	}
	if !ok {
		return core.Solution{}, -1, nil
	}
	return sol, target, nil
}

// solveBinary performs a true binary search between lb and ub, keeping the
// best (smallest feasible) bin count found. Grounded on
// AlgoPairing_BinSearch::solveInstanceMultiBin.
func solveBinary(inst *core.Instance, inner Inner, lb, ub int) (core.Solution, int, error) {
	best, ok := inner.TrySolve(inst, ub)
	if !ok {
		return core.Solution{}, -1, nil
	}

	for lb < ub {
		target := (lb + ub) / 2
		if sol, ok := inner.TrySolve(inst, target); ok {
			ub = target
			best = sol
		} else {
			lb = target + 1
		}
	}

	return best, ub, nil
}
