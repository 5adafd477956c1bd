// Package core defines the central Item, Bin, Instance and Solution types
// for the vector bin packing engine, and the handful of thread-free
// primitives every heuristic family builds on.
//
// Item is immutable after construction: an Instance owns its Items slice
// and every algorithm merely references it by id. Bin is mutable: it tracks
// residual capacity per dimension and an append-only list of allocated item
// ids. Neither type carries a scratch "measure" field — per the
// re-architecture notes, that scratch lives in algorithm-local slices
// (see the itemcentric, bincentric and multibin packages), so an Instance's
// Items can be safely shared, read-only, across independent algorithm runs.
//
// This file declares the sentinel errors raised by NewInstance and Bin.Add.
package core

import "errors"

// Sentinel errors for core data-model construction and mutation.
var (
	// ErrInvalidDimension indicates a dimension count < 1.
	ErrInvalidDimension = errors.New("core: dimension must be >= 1")

	// ErrInvalidCapacity indicates a non-positive bin capacity in some dimension,
	// or a bin-capacity slice whose length does not match the instance dimension.
	ErrInvalidCapacity = errors.New("core: bin capacity must be positive and match dimension count")

	// ErrNegativeSize indicates a negative item size was supplied.
	ErrNegativeSize = errors.New("core: item size must be non-negative")

	// ErrSizeDimMismatch indicates an item's size row has fewer entries than
	// the instance dimension.
	ErrSizeDimMismatch = errors.New("core: item size row shorter than instance dimension")

	// ErrCapacityExceeded indicates Bin.Add was called with an item that does
	// not fit the bin's residual capacity; callers must check Bin.Fits first.
	ErrCapacityExceeded = errors.New("core: item does not fit bin residual capacity")
)
