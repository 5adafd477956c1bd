package itemcentric

import (
	"errors"

	"github.com/katalvlaran/vbpp/wms"
)

// ItemOrderPolicy selects how the unplaced item suffix is ordered before
// (and, when Algo.Dynamic is set, between) placement attempts.
type ItemOrderPolicy int

const (
	// ItemOrderNone leaves items in the Instance's fixed post-shuffle
	// order (First Fit).
	ItemOrderNone ItemOrderPolicy = iota

	// ItemOrderMeasure sorts items decreasing by a wms.Measure evaluated
	// over the item's normalized sizes and the current Algo.Weight vector
	// (First Fit Decreasing and its Best/Worst-Fit-Decreasing siblings).
	ItemOrderMeasure

	// ItemOrderLexico sorts items decreasing by their raw size vector,
	// compared dimension by dimension left to right.
	ItemOrderLexico

	// ItemOrderRank sorts items decreasing by a per-dimension rank sum:
	// for each dimension, each item earns its 0-based rank among items
	// ordered by size in that dimension, summed across all dimensions.
	ItemOrderRank
)

// BinOrderPolicy selects how the open bin list is ordered before each
// first-feasible-bin scan.
type BinOrderPolicy int

const (
	// BinOrderNone tries bins in creation order (Fit/Fit-Decreasing).
	BinOrderNone BinOrderPolicy = iota

	// BinOrderAsc sorts bins ascending by measure, so the tightest-fitting
	// (smallest residual) bin is tried first: Best Fit.
	BinOrderAsc

	// BinOrderDesc sorts bins descending by measure, so the
	// emptiest-residual bin is tried first: Worst Fit.
	BinOrderDesc
)

// ErrRunawayBinGrowth reports that a run opened strictly more bins than
// there are items in the instance - a contract violation, not a normal
// infeasibility signal.
var ErrRunawayBinGrowth = errors.New("itemcentric: more bins opened than items in instance")

// Algo composes the orthogonal policy choices of the Item-Centric Fit
// family (the original class lattice's AlgoFit and its FFD/BFD/WFD/Lexico/
// Rank descendants) into one flat value. Construct it only through the
// named constructors in package factory; Solve trusts every field
// combination it is given.
type Algo struct {
	// ItemOrder selects how unplaced items are ordered for the scan.
	ItemOrder ItemOrderPolicy

	// BinOrder selects how open bins are ordered for the first-feasible scan.
	BinOrder BinOrderPolicy

	// Measure is read for the item sort when ItemOrder is ItemOrderMeasure,
	// and for the bin sort when BinOrder != BinOrderNone and ItemOrder is
	// not ItemOrderLexico or ItemOrderRank: those two bin-order variants
	// use a comparator of their own (raw-residual lexicographic order, or
	// residual rank-sum) with no weight or measure input, matching the
	// original's AlgoBFD_Lexico/AlgoWFD_Lexico/AlgoBFD_Rank/AlgoWFD_Rank
	// constructors, none of which take a weight/combination parameter.
	Measure wms.Measure

	// Weight drives the item-side (or, when BinWeighted is false, also
	// the bin-side) weight vector.
	Weight wms.Weight

	// BinWeight drives the bin-side weight vector when BinWeighted is
	// true; ignored otherwise.
	BinWeight wms.Weight

	// Dynamic re-evaluates weights, item measures, and item order after
	// every placement (FFD-dynamic); when false, items are ordered once
	// up front. Bin re-ordering is controlled independently: it runs
	// after every placement whenever BinOrder != BinOrderNone, exactly
	// as the original's is_BF_type branch always resorts bins.
	Dynamic bool

	// BinWeighted selects the T2/T3-style bin measure: weights derived
	// from the pool of open bins' residual capacity via BinWeight,
	// instead of the T1-style measure that reuses the item-side weight
	// vector against bin residuals.
	BinWeighted bool

	// NewBinAtFront places a freshly created bin at the front of the open
	// bin list instead of the back. It only affects the stable tie-break
	// order on the very next bin sort; the worst-fit variants set it so
	// a fresh, maximally-empty bin starts near the front of a
	// descending-measure list.
	NewBinAtFront bool
}
