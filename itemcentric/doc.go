// Package itemcentric implements the Item-Centric Fit family of vector bin
// packing heuristics: a single pass over the item list, each item placed in
// the first bin it fits, with optional item pre-sorting (FFD-style) and bin
// re-ordering after each placement (BF-style).
//
// Grounded on original_source/src/algos/algos_ItemCentric.{hpp,cpp}, whose
// class lattice (AlgoFit -> AlgoFFD -> AlgoBFD_T1/T2/T3/AlgoBF/AlgoWFD_T1/T2/
// AlgoWF, plus the Lexico and Rank siblings) is flattened here into a single
// Algo struct of orthogonal policy fields, constructed only through the
// named constructors in the factory package. Weight and Measure computation
// is delegated to package wms; this package owns only the per-item/per-bin
// bookkeeping (running aggregates, placement order, re-sort timing) that the
// original spread across virtual method overrides.
package itemcentric
