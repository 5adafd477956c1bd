package factory

import (
	"errors"

	"github.com/katalvlaran/vbpp/core"
	"github.com/katalvlaran/vbpp/wms"
)

// Kind names one concrete heuristic strategy. Constructed only through
// Descriptor + New; never compared to a parsed string outside this package.
type Kind int

const (
	FF Kind = iota
	FFD
	BFDT1
	BFDT2
	BFDT3
	BF
	WFDT1
	WFDT2
	WF
	FFDLexico
	BFDLexico
	WFDLexico
	FFDRank
	BFDRank
	WFDRank
	BCS
	PairingIncrement
	PairingBinary
	WFDmIncrement
	WFDmBinary
	BFDmIncrement
	BFDmBinary
	LBSum
	LBClique
)

// ErrUnsupportedDescriptor reports a Descriptor that names a Kind/field
// combination no constructor in the original ever declares. The one
// standing case is WFDT3: original_source/src/algos/algos_ItemCentric.hpp
// declares AlgoBFD_T3 but never an AlgoWFD_T3, so there is no WFDT3 Kind
// value at all — requesting one is a compile error, not a runtime one.
var ErrUnsupportedDescriptor = errors.New("factory: unsupported descriptor")

// ErrContractViolation reports a call to the wrong Strategy method for a
// Kind: SolveSingle on a multi-bin-only strategy, or SolveMulti on a
// single-bin-count one. Grounded on the original's BaseAlgo::solveInstance
// / solveInstanceMultiBin pure-virtual split, which a strategy either
// implements meaningfully or rejects outright — Go has no "this method
// doesn't exist for you", so a sentinel error is the idiomatic substitute.
var ErrContractViolation = errors.New("factory: strategy does not support this operation")

// Descriptor is a plain, structured request for one strategy: no string to
// re-parse, no environment-variable or config-file coupling. Unused fields
// for a given Kind are ignored.
type Descriptor struct {
	Kind Kind

	Measure   wms.Measure
	Weight    wms.Weight
	BinWeight wms.Weight
	Score     wms.Score

	Dynamic      bool
	UseBinWeight bool
	IncrementPct int
}

// Strategy is the uniform handle New returns: a name for logging, a
// single-bin-count solve, and a multi-bin fixed-pool-search solve. Exactly
// one of SolveSingle/SolveMulti is meaningful for any given Kind; the other
// returns ErrContractViolation.
type Strategy interface {
	Name() string
	SolveSingle(inst *core.Instance) (core.Solution, error)
	SolveMulti(inst *core.Instance, lb, ub int) (core.Solution, int, error)
}
