// Package multibin implements the Multi-Bin family: algorithms that, unlike
// itemcentric and bincentric, attempt to pack an instance into a fixed
// number of bins and report feasibility rather than growing the bin pool
// on demand. Solve wraps a fixed-pool attempt (an Inner implementation)
// with an outer search over the target bin count, looking for the fewest
// bins any attempt succeeds with.
//
// Grounded on original_source/src/algos/algos_MultiBin.{hpp,cpp}:
// AlgoPairing (bin-centric scoring over a fixed pool), AlgoWFDm/AlgoBFDm
// (item-centric Worst/Best-Fit-Decreasing over a fixed pool), and the
// Increment/BinSearch outer-search mixins shared by all three.
package multibin
