// Package bound computes heuristic lower bounds on the number of bins any
// packing of a vbpp Instance can achieve: Sum (per-dimension rounding) and
// Clique (Johnson's greedy clique heuristic on the item incompatibility
// graph). Neither bound is guaranteed tight; both are cheap to compute and
// safe to use as a starting point for the multi-bin outer search.
//
// Grounded on original_source/src/algos/lower_bounds.{hpp,cpp}. The spec's
// Design Notes record that the original names BPP_LB1/LB_BPP are synonyms
// for Sum; this package only exposes the Sum name.
package bound
