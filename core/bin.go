package core

// Bin is a mutable container of residual capacity. MaxCaps is a shared,
// read-only reference into the owning Instance (every Bin of the same
// Instance points at the same backing array); AvailCaps is owned by the
// Bin and mutated in place as items are admitted; Allocated is the
// append-only sequence of admitted item ids, in admission order.
//
// Invariant: for every dimension h, AvailCaps[h] == MaxCaps[h] minus the
// sum of Sizes[h] over every item in Allocated. Bin never verifies this
// invariant against the full allocation history; it maintains it
// incrementally on every Add call instead.
type Bin struct {
	// ID is the 0-based identifier in bin-creation order.
	ID int

	// MaxCaps is the bin capacity per dimension, shared with every other
	// Bin of the same Instance. Never mutate through this slice.
	MaxCaps []int64

	// AvailCaps is the remaining capacity per dimension, strictly
	// non-negative after every successful Add.
	AvailCaps []int64

	// Allocated lists the ids of items placed in this bin, in placement order.
	Allocated []int
}

// NewBin returns an empty Bin with the given id, sharing maxCaps (never
// copying it) and starting AvailCaps as an independent copy of maxCaps.
//
// Complexity: O(d) where d is the dimension count.
func NewBin(id int, maxCaps []int64) *Bin {
	avail := make([]int64, len(maxCaps))
	copy(avail, maxCaps)

	return &Bin{
		ID:        id,
		MaxCaps:   maxCaps,
		AvailCaps: avail,
		Allocated: nil,
	}
}

// Fits reports whether sizes can be admitted into the bin without violating
// capacity in any dimension: for every h, sizes[h] must be <= AvailCaps[h].
//
// Complexity: O(d).
func (b *Bin) Fits(sizes []int64) bool {
	for h, s := range sizes {
		if s > b.AvailCaps[h] {
			return false
		}
	}
	return true
}

// Add admits item into the bin, decrementing AvailCaps by item.Sizes and
// appending item.ID to Allocated. It returns ErrCapacityExceeded (without
// mutating the bin) if the item does not fit; callers on a hot path that
// already called Fits can skip the redundant check by calling AddUnchecked.
//
// Complexity: O(d).
func (b *Bin) Add(item Item) error {
	if !b.Fits(item.Sizes) {
		return ErrCapacityExceeded
	}
	b.AddUnchecked(item)

	return nil
}

// AddUnchecked admits item without re-checking feasibility. Callers must
// have already established b.Fits(item.Sizes); violating this contract
// corrupts the AvailCaps invariant silently.
//
// Complexity: O(d).
func (b *Bin) AddUnchecked(item Item) {
	for h, s := range item.Sizes {
		b.AvailCaps[h] -= s
	}
	b.Allocated = append(b.Allocated, item.ID)
}

// Load returns the per-dimension amount consumed so far: MaxCaps[h] - AvailCaps[h].
//
// Complexity: O(d), allocates one slice of length d.
func (b *Bin) Load() []int64 {
	load := make([]int64, len(b.MaxCaps))
	for h := range load {
		load[h] = b.MaxCaps[h] - b.AvailCaps[h]
	}
	return load
}

// Clone returns an independent deep copy of the bin: AvailCaps and
// Allocated are copied, MaxCaps remains shared (it is read-only and owned
// by the Instance), so the copy is unaffected by later Add calls on the
// original.
//
// Complexity: O(d + k) where k == len(Allocated).
func (b *Bin) Clone() *Bin {
	avail := make([]int64, len(b.AvailCaps))
	copy(avail, b.AvailCaps)
	alloc := make([]int, len(b.Allocated))
	copy(alloc, b.Allocated)

	return &Bin{
		ID:        b.ID,
		MaxCaps:   b.MaxCaps,
		AvailCaps: avail,
		Allocated: alloc,
	}
}
