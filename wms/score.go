package wms

import "math"

// Score selects the item-bin affinity function used by the bin-centric and
// pairing heuristics to compare candidate items (or candidate item-bin
// pairs) for a placement decision. Higher is better in every policy.
type Score int

const (
	// DotProduct1 computes sum_h w[h]*s[h]*r[h].
	DotProduct1 Score = iota

	// DotProduct2 is DotProduct1 normalized by ‖s‖2 * ‖r‖2.
	DotProduct2

	// DotProduct3 is DotProduct1 normalized by ‖r‖2^2.
	DotProduct3

	// NormDotProduct includes a per-dimension term only where both the
	// item-size and bin-residual aggregates exceed ZeroThreshold.
	NormDotProduct

	// L2Norm computes -sum_h w[h]*(r[h]-s[h])^2 (more negative = farther
	// apart; larger/less-negative = better fit).
	L2Norm

	// TightFillSum computes sum_h w[h]*s[h]*maxCap[h]/residCap[h].
	TightFillSum

	// TightFillMin computes min_h (w[h]*s[h]*maxCap[h]/residCap[h]) over
	// dimensions where w[h] != 0; 0 if every weight is 0.
	TightFillMin
)

// String renders the score policy name, including its descriptor alias.
func (sc Score) String() string {
	switch sc {
	case DotProduct1:
		return "DP1"
	case DotProduct2:
		return "DP2"
	case DotProduct3:
		return "DP3"
	case NormDotProduct:
		return "NormDP"
	case L2Norm:
		return "L2Norm"
	case TightFillSum:
		return "TFSum"
	case TightFillMin:
		return "TFMin"
	default:
		return "Score(?)"
	}
}

// Context carries every input a Score policy may need to evaluate one
// item-bin pair. ItemInvNorm2 and BinNorm2 are optional caches (0 means
// "not cached, compute fresh"); DotProduct2/3 are the only policies that
// read them.
type Context struct {
	// Weights is the per-dimension weight vector w[h].
	Weights []float64

	// ItemNorm is the item's normalized size vector s[h].
	ItemNorm []float64

	// BinResidualNorm is the bin's normalized residual-capacity vector r[h].
	BinResidualNorm []float64

	// MaxCaps is the bin's raw per-dimension capacity.
	MaxCaps []int64

	// ResidCaps is the bin's raw per-dimension residual capacity.
	ResidCaps []int64

	// TotalNormSize[h] is the running aggregate total normalized item size,
	// read only by NormDotProduct.
	TotalNormSize []float64

	// TotalNormResidual[h] is the running aggregate total normalized
	// residual capacity, read only by NormDotProduct.
	TotalNormResidual []float64

	// ItemInvNorm2 is a cached 1/‖s‖2; 0 means "compute from ItemNorm".
	ItemInvNorm2 float64

	// BinNorm2 is a cached ‖r‖2; 0 means "compute from BinResidualNorm".
	BinNorm2 float64
}

// ComputeScore evaluates sc over ctx. It returns (score, true) when the
// pair is feasible, or (0, false) when the item does not fit the bin in
// some dimension - callers should already have filtered infeasible pairs
// via Bin.Fits before scoring (infeasibility precedes scoring), this is a
// defensive second check so a stale cache can never silently produce a
// score for an infeasible placement.
//
// Complexity: O(dim).
func ComputeScore(sc Score, ctx Context) (float64, bool) {
	for h, s := range ctx.ItemNorm {
		if s > ctx.BinResidualNorm[h] {
			return 0, false
		}
	}

	switch sc {
	case DotProduct1:
		return dotProduct(ctx.Weights, ctx.ItemNorm, ctx.BinResidualNorm), true

	case DotProduct2:
		dp := dotProduct(ctx.Weights, ctx.ItemNorm, ctx.BinResidualNorm)
		invS := ctx.ItemInvNorm2
		if invS == 0 {
			n := norm2(ctx.ItemNorm)
			if n == 0 {
				return 0, true
			}
			invS = 1 / n
		}
		r := ctx.BinNorm2
		if r == 0 {
			r = norm2(ctx.BinResidualNorm)
		}
		if r == 0 {
			return 0, true
		}
		return dp * invS / r, true

	case DotProduct3:
		dp := dotProduct(ctx.Weights, ctx.ItemNorm, ctx.BinResidualNorm)
		r := ctx.BinNorm2
		if r == 0 {
			r = norm2(ctx.BinResidualNorm)
		}
		if r == 0 {
			return 0, true
		}
		return dp / (r * r), true

	case NormDotProduct:
		var sum float64
		for h, s := range ctx.ItemNorm {
			totS := ctx.TotalNormSize[h]
			totR := ctx.TotalNormResidual[h]
			if totS <= ZeroThreshold || totR <= ZeroThreshold {
				continue
			}
			sum += ctx.Weights[h] * s * ctx.BinResidualNorm[h] / (totS * totR)
		}
		return sum, true

	case L2Norm:
		var sum float64
		for h, s := range ctx.ItemNorm {
			d := ctx.BinResidualNorm[h] - s
			sum += ctx.Weights[h] * d * d
		}
		return -sum, true

	case TightFillSum:
		var sum float64
		for h, s := range ctx.ItemNorm {
			rc := ctx.ResidCaps[h]
			if rc == 0 {
				continue
			}
			sum += ctx.Weights[h] * s * float64(ctx.MaxCaps[h]) / float64(rc)
		}
		return sum, true

	case TightFillMin:
		var (
			min     float64
			anyTerm bool
		)
		for h, s := range ctx.ItemNorm {
			if ctx.Weights[h] == 0 {
				continue
			}
			var term float64
			if rc := ctx.ResidCaps[h]; rc != 0 {
				term = ctx.Weights[h] * s * float64(ctx.MaxCaps[h]) / float64(rc)
			}
			if !anyTerm || term < min {
				min = term
				anyTerm = true
			}
		}
		if !anyTerm {
			return 0, true
		}
		return min, true

	default:
		return dotProduct(ctx.Weights, ctx.ItemNorm, ctx.BinResidualNorm), true
	}
}

func dotProduct(w, a, b []float64) float64 {
	var sum float64
	for h := range a {
		sum += w[h] * a[h] * b[h]
	}
	return sum
}

func norm2(v []float64) float64 {
	if len(v) == 1 {
		return math.Abs(v[0])
	}
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
