package factory

import (
	"github.com/katalvlaran/vbpp/bincentric"
	"github.com/katalvlaran/vbpp/bound"
	"github.com/katalvlaran/vbpp/itemcentric"
	"github.com/katalvlaran/vbpp/multibin"
)

// New validates d and returns the Strategy it names.
//
// Grounded on the original's per-Kind constructors in
// original_source/src/algos/algos_ItemCentric.{hpp,cpp},
// algos_BinCentric.{hpp,cpp}, and algos_MultiBin.{hpp,cpp} — each branch
// below reproduces one constructor's fixed field assignments, leaving only
// the policy knobs that constructor actually exposes driven by d.
func New(d Descriptor) (Strategy, error) {
	switch d.Kind {
	case FF:
		return itemCentricStrategy{"FF", itemcentric.Algo{}}, nil

	case FFD:
		return itemCentricStrategy{"FFD", itemcentric.Algo{
			ItemOrder: itemcentric.ItemOrderMeasure,
			Measure:   d.Measure,
			Weight:    d.Weight,
			Dynamic:   d.Dynamic,
		}}, nil

	case BFDT1:
		return itemCentricStrategy{"BFD-T1", itemcentric.Algo{
			ItemOrder: itemcentric.ItemOrderMeasure,
			BinOrder:  itemcentric.BinOrderAsc,
			Measure:   d.Measure,
			Weight:    d.Weight,
			Dynamic:   d.Dynamic,
		}}, nil

	case BFDT2:
		return itemCentricStrategy{"BFD-T2", itemcentric.Algo{
			ItemOrder:   itemcentric.ItemOrderMeasure,
			BinOrder:    itemcentric.BinOrderAsc,
			Measure:     d.Measure,
			Weight:      d.Weight,
			BinWeight:   d.Weight,
			Dynamic:     d.Dynamic,
			BinWeighted: true,
		}}, nil

	case BFDT3:
		// AlgoBFD_T3's constructor is AlgoBFD_T2's with a second,
		// independent bin_weight argument instead of reusing weight.
		return itemCentricStrategy{"BFD-T3", itemcentric.Algo{
			ItemOrder:   itemcentric.ItemOrderMeasure,
			BinOrder:    itemcentric.BinOrderAsc,
			Measure:     d.Measure,
			Weight:      d.Weight,
			BinWeight:   d.BinWeight,
			Dynamic:     d.Dynamic,
			BinWeighted: true,
		}}, nil

	case BF:
		// AlgoBF extends AlgoBFD_T2 with no dynamic_weights parameter:
		// always static, and items are never measure-sorted (plain Best
		// Fit, not Best-Fit-Decreasing).
		return itemCentricStrategy{"BF", itemcentric.Algo{
			BinOrder:    itemcentric.BinOrderAsc,
			Measure:     d.Measure,
			Weight:      d.Weight,
			BinWeight:   d.Weight,
			BinWeighted: true,
		}}, nil

	case WFDT1:
		// AlgoWFD_T1 extends AlgoBFD_T1, overriding sortBins to
		// descending order; new bins are created at the front so a
		// fresh, maximally-empty bin starts near the front of that list.
		return itemCentricStrategy{"WFD-T1", itemcentric.Algo{
			ItemOrder:     itemcentric.ItemOrderMeasure,
			BinOrder:      itemcentric.BinOrderDesc,
			Measure:       d.Measure,
			Weight:        d.Weight,
			Dynamic:       d.Dynamic,
			NewBinAtFront: true,
		}}, nil

	case WFDT2:
		return itemCentricStrategy{"WFD-T2", itemcentric.Algo{
			ItemOrder:     itemcentric.ItemOrderMeasure,
			BinOrder:      itemcentric.BinOrderDesc,
			Measure:       d.Measure,
			Weight:        d.Weight,
			BinWeight:     d.Weight,
			Dynamic:       d.Dynamic,
			BinWeighted:   true,
			NewBinAtFront: true,
		}}, nil

	case WF:
		return itemCentricStrategy{"WF", itemcentric.Algo{
			BinOrder:      itemcentric.BinOrderDesc,
			Measure:       d.Measure,
			Weight:        d.Weight,
			BinWeight:     d.Weight,
			BinWeighted:   true,
			NewBinAtFront: true,
		}}, nil

	case FFDLexico:
		return itemCentricStrategy{"FFD-Lexico", itemcentric.Algo{
			ItemOrder: itemcentric.ItemOrderLexico,
		}}, nil

	case BFDLexico:
		// AlgoBFD_Lexico's constructor takes no weight/combination
		// parameter: bins are ordered by raw residual lexicographic
		// comparison alone (itemcentric.sortBinsLexico).
		return itemCentricStrategy{"BFD-Lexico", itemcentric.Algo{
			ItemOrder: itemcentric.ItemOrderLexico,
			BinOrder:  itemcentric.BinOrderAsc,
		}}, nil

	case WFDLexico:
		return itemCentricStrategy{"WFD-Lexico", itemcentric.Algo{
			ItemOrder:     itemcentric.ItemOrderLexico,
			BinOrder:      itemcentric.BinOrderDesc,
			NewBinAtFront: true,
		}}, nil

	case FFDRank:
		return itemCentricStrategy{"FFD-Rank", itemcentric.Algo{
			ItemOrder: itemcentric.ItemOrderRank,
			Dynamic:   d.Dynamic,
		}}, nil

	case BFDRank:
		// AlgoBFD_Rank's constructor likewise takes no weight/combination
		// parameter: bins are ordered by residual rank-sum alone
		// (itemcentric.computeBinRankMeasures).
		return itemCentricStrategy{"BFD-Rank", itemcentric.Algo{
			ItemOrder: itemcentric.ItemOrderRank,
			BinOrder:  itemcentric.BinOrderAsc,
			Dynamic:   d.Dynamic,
		}}, nil

	case WFDRank:
		return itemCentricStrategy{"WFD-Rank", itemcentric.Algo{
			ItemOrder:     itemcentric.ItemOrderRank,
			BinOrder:      itemcentric.BinOrderDesc,
			Dynamic:       d.Dynamic,
			NewBinAtFront: true,
		}}, nil

	case BCS:
		return binCentricStrategy{"BCS", bincentric.Algo{
			Score:       d.Score,
			Weight:      d.Weight,
			Dynamic:     d.Dynamic,
			BinWeighted: d.UseBinWeight,
		}}, nil

	case PairingIncrement:
		return multiBinStrategy{"Pairing-Increment", multibin.Pairing{
			Score: d.Score, Weight: d.Weight, Dynamic: d.Dynamic, BinWeighted: d.UseBinWeight,
		}, multibin.Increment, d.IncrementPct}, nil

	case PairingBinary:
		return multiBinStrategy{"Pairing-BinSearch", multibin.Pairing{
			Score: d.Score, Weight: d.Weight, Dynamic: d.Dynamic, BinWeighted: d.UseBinWeight,
		}, multibin.Binary, d.IncrementPct}, nil

	case WFDmIncrement:
		return multiBinStrategy{"WFDm-Increment", multibin.WFDm{
			Measure: d.Measure, Weight: d.Weight, Dynamic: d.Dynamic, BinWeighted: d.UseBinWeight,
		}, multibin.Increment, d.IncrementPct}, nil

	case WFDmBinary:
		return multiBinStrategy{"WFDm-BinSearch", multibin.WFDm{
			Measure: d.Measure, Weight: d.Weight, Dynamic: d.Dynamic, BinWeighted: d.UseBinWeight,
		}, multibin.Binary, d.IncrementPct}, nil

	case BFDmIncrement:
		return multiBinStrategy{"BFDm-Increment", multibin.BFDm{
			Measure: d.Measure, Weight: d.Weight, Dynamic: d.Dynamic, BinWeighted: d.UseBinWeight,
		}, multibin.Increment, d.IncrementPct}, nil

	case BFDmBinary:
		return multiBinStrategy{"BFDm-BinSearch", multibin.BFDm{
			Measure: d.Measure, Weight: d.Weight, Dynamic: d.Dynamic, BinWeighted: d.UseBinWeight,
		}, multibin.Binary, d.IncrementPct}, nil

	case LBSum:
		return lowerBoundStrategy{"LB-Sum", bound.Sum}, nil

	case LBClique:
		return lowerBoundStrategy{"LB-Clique", bound.Clique}, nil

	default:
		return nil, ErrUnsupportedDescriptor
	}
}
