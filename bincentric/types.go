package bincentric

import (
	"errors"

	"github.com/katalvlaran/vbpp/wms"
)

// ErrRunawayBinGrowth reports that a run opened strictly more bins than
// there are items in the instance.
var ErrRunawayBinGrowth = errors.New("bincentric: more bins opened than items in instance")

// Algo composes the Bin-Centric Score family's policy choices: which
// affinity function ranks item-bin pairs, which weight policy feeds it,
// whether weights are re-evaluated after every placement, and whether the
// weight aggregate is bin-side (open-bin residual capacity) rather than
// item-side (unplaced-item size).
type Algo struct {
	// Score selects the item-bin affinity function.
	Score wms.Score

	// Weight drives the per-dimension weight vector fed to Score.
	Weight wms.Weight

	// Dynamic re-evaluates the weight vector before every placement
	// decision. Ratio-type Weight policies and BinWeighted both force
	// this on regardless of the field's value, mirroring the original
	// constructor's "is_ratio_weight or use_bin_weights => dynamic".
	Dynamic bool

	// BinWeighted sources the weight aggregate from open bins' residual
	// capacity (and uses the open-bin count as N) instead of from
	// unplaced items' size, for non-ratio Weight policies. Ratio
	// policies ignore this flag and always read item-side aggregates,
	// exactly as the original does.
	BinWeighted bool
}
