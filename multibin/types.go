package multibin

import (
	"github.com/katalvlaran/vbpp/core"
	"github.com/katalvlaran/vbpp/wms"
)

// Search selects the outer bin-count search strategy.
type Search int

const (
	// Increment walks target_bins up from the lower bound by a step
	// derived from bin_increment_percent, forcing one final attempt at
	// the upper bound. Grounded on AlgoPairing_Increment::solveInstanceMultiBin.
	Increment Search = iota
	// Binary performs a true binary search between the lower and upper
	// bound, keeping the best (smallest feasible) bin count found.
	// Grounded on AlgoPairing_BinSearch::solveInstanceMultiBin; the
	// commented-out "relaxed ±1-neighbor" variant in the original source
	// is dead code and is not implemented here.
	Binary
)

// Inner is a fixed-pool packing attempt: given a target bin count k, it
// either packs every item into exactly k bins and reports true, or reports
// false with a zero Solution when some item cannot be placed.
type Inner interface {
	TrySolve(inst *core.Instance, k int) (core.Solution, bool)
}

// Pairing is the fixed-pool Bin-Centric Score attempt: at every step, scan
// every remaining-item/open-bin pair and place the globally highest-scoring
// feasible pair. Grounded on AlgoPairing::packItems.
type Pairing struct {
	Score       wms.Score
	Weight      wms.Weight
	Dynamic     bool
	BinWeighted bool
}

// WFDm is the fixed-pool Worst-Fit-Decreasing attempt: items are ordered
// once by decreasing measure (re-ordered after every placement when
// dynamic), and for each item the first bin that fits is used, with bins
// kept sorted by decreasing residual measure so the most-available bin is
// always tried first. Grounded on AlgoWFDm::packItems/sortBins.
type WFDm struct {
	Measure     wms.Measure
	Weight      wms.Weight
	Dynamic     bool
	BinWeighted bool
}

// BFDm is the Best-Fit-Decreasing twin of WFDm: identical placement logic,
// but bins are kept sorted by increasing residual measure so the
// tightest-fitting bin is tried first. Grounded on
// AlgoBFDm_Increment::sortBins / AlgoBFDm_BinSearch::sortBins.
type BFDm struct {
	Measure     wms.Measure
	Weight      wms.Weight
	Dynamic     bool
	BinWeighted bool
}
