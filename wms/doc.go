// Package wms (Weights, Measures, Scores) provides the parametric building
// blocks every vector bin packing heuristic in this module is assembled
// from:
//
//   - Weight: a per-dimension multiplier derived from a policy and running
//     aggregates over the still-unpacked items and/or still-open bins.
//   - Measure: a scalar combined-size policy (L1/LInf/L2/L2Load) that turns
//     a weighted normalized vector into a single number used for ordering.
//   - Score: an item-bin affinity function used by the bin-centric and
//     pairing heuristics to pick the best feasible item for a bin (or the
//     best feasible item-bin pair).
//
// Every function here is a pure, allocation-light numeric kernel: no
// logging, no panics on ordinary input, and a single defensive rule
// applied everywhere - whenever a per-dimension divisor falls below
// ZeroThreshold, the dimension is deactivated (weight/term set to exactly
// 0) rather than dividing by a near-zero number.
//
// Grounded on original_source/src/algos/weights_measures_scores.{hpp,cpp}.
package wms

// ZeroThreshold is the divisor floor below which a per-dimension weight or
// score term is deactivated (set to exactly 0) instead of risking a
// division blow-up.
const ZeroThreshold = 1e-5
