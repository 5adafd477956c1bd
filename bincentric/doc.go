// Package bincentric implements the Bin-Centric Score family: one bin is
// kept open at a time; among the still-unplaced items that fit it, the one
// with the highest wms.Score is placed; when none fits, a new bin is
// opened.
//
// Grounded on original_source/src/algos/algos_BinCentric.{hpp,cpp}. Score
// evaluation is delegated to package wms; this package owns only the
// running aggregates (total normalized item size / bin residual capacity)
// and the single-current-bin scan loop.
package bincentric
