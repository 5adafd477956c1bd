package wms

import "math"

// Weight selects the policy used to derive a per-dimension weight vector
// from running aggregates over unpacked items and/or open bins.
type Weight int

const (
	// Unit sets every dimension's weight to 1.
	Unit Weight = iota

	// Average sets w[h] = total_norm_item_size[h].
	Average

	// Exponential sets w[h] = exp(0.01 * total_norm_item_size[h] / n).
	Exponential

	// ReciprocalAverage sets w[h] = 1 / total_norm_item_size[h], or 0 when
	// the total is below ZeroThreshold. Also known as Divided Average or
	// ExtendedSum.
	ReciprocalAverage

	// ResidualRatio sets w[h] = 1 / total_norm_residual_capacity[h], or 0
	// when the total is below ZeroThreshold. Ratio-type: implies Dynamic.
	ResidualRatio

	// UtilizationRatio sets w[h] = total_norm_item_size[h] / total_norm_residual_capacity[h],
	// or 0 when the residual total is below ZeroThreshold. Ratio-type:
	// implies Dynamic. From Gabay and Zaourar, 2016.
	UtilizationRatio
)

// String renders the weight policy name for logs and test output.
func (w Weight) String() string {
	switch w {
	case Unit:
		return "Unit"
	case Average:
		return "Average"
	case Exponential:
		return "Exponential"
	case ReciprocalAverage:
		return "ReciprocalAverage"
	case ResidualRatio:
		return "ResidualRatio"
	case UtilizationRatio:
		return "UtilizationRatio"
	default:
		return "Weight(?)"
	}
}

// IsRatio reports whether w depends on residual-capacity aggregates.
// Ratio-type weights always imply Dynamic recomputation.
func (w Weight) IsRatio() bool {
	return w == ResidualRatio || w == UtilizationRatio
}

// Aggregates carries the running, per-dimension totals a Weight policy
// reads, plus the denominator count n (remaining items, or open bins when
// the caller's use-bin-weights flag is set - see ComputeWeights).
type Aggregates struct {
	// TotalNormSize[h] is the sum of normalized sizes of still-unpacked
	// items in dimension h.
	TotalNormSize []float64

	// TotalNormResidual[h] is the sum of normalized residual capacities of
	// still-open bins in dimension h. Only read by ratio-type policies.
	TotalNormResidual []float64

	// N is the denominator for Exponential: remaining-item count by
	// default, or open-bin count when use-bin-weights is set.
	N int
}

// ComputeWeights derives the per-dimension weight vector for w from agg.
// dim is the dimension count (also len(agg.TotalNormSize)).
//
// Whenever a per-dimension divisor is below ZeroThreshold, that dimension's
// weight is set to exactly 0 (deactivated) instead of dividing by it.
//
// Complexity: O(dim).
func ComputeWeights(w Weight, dim int, agg Aggregates) []float64 {
	weights := make([]float64, dim)

	switch w {
	case Unit:
		for h := range weights {
			weights[h] = 1
		}
	case Average:
		for h := range weights {
			weights[h] = agg.TotalNormSize[h]
		}
	case Exponential:
		n := agg.N
		if n <= 0 {
			n = 1
		}
		for h := range weights {
			weights[h] = math.Exp(0.01 * agg.TotalNormSize[h] / float64(n))
		}
	case ReciprocalAverage:
		for h := range weights {
			total := agg.TotalNormSize[h]
			if total < ZeroThreshold {
				weights[h] = 0
			} else {
				weights[h] = 1 / total
			}
		}
	case ResidualRatio:
		for h := range weights {
			total := agg.TotalNormResidual[h]
			if total < ZeroThreshold {
				weights[h] = 0
			} else {
				weights[h] = 1 / total
			}
		}
	case UtilizationRatio:
		for h := range weights {
			totalResid := agg.TotalNormResidual[h]
			if totalResid < ZeroThreshold {
				weights[h] = 0
			} else {
				weights[h] = agg.TotalNormSize[h] / totalResid
			}
		}
	default:
		for h := range weights {
			weights[h] = 1
		}
	}

	return weights
}
