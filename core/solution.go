package core

// BinSnapshot is the frozen, read-only view of one bin in a Solution: its
// creation-order id and the ids of the items it was assigned.
type BinSnapshot struct {
	// ID is the bin's creation-order identifier.
	ID int

	// Items lists the ids of items allocated to this bin, in placement order.
	Items []int
}

// Solution is the final packing: a sequence of bins, each carrying the
// item ids assigned to it. The reported objective is NumBins().
type Solution struct {
	// Bins holds one BinSnapshot per bin used in the solution.
	Bins []BinSnapshot
}

// NumBins returns the solution's objective value: the number of bins used.
func (s Solution) NumBins() int { return len(s.Bins) }

// Snapshot clones a live slice of *Bin into an immutable Solution. Only the
// bins (ids and allocation lists) are cloned; Items are never copied since
// they are owned, read-only, by the Instance.
//
// Complexity: O(sum of per-bin allocation lengths).
func Snapshot(bins []*Bin) Solution {
	out := make([]BinSnapshot, len(bins))
	for i, b := range bins {
		items := make([]int, len(b.Allocated))
		copy(items, b.Allocated)
		out[i] = BinSnapshot{ID: b.ID, Items: items}
	}
	return Solution{Bins: out}
}

// CloneBins returns an independent deep copy of a live bin pool (AvailCaps
// and Allocated are copied per bin; MaxCaps stays shared), which keeps its
// state when the original bins are mutated afterwards. Package multibin
// does not use it: its searches keep Snapshot values instead.
//
// Complexity: O(sum of per-bin dimension + allocation lengths).
func CloneBins(bins []*Bin) []*Bin {
	out := make([]*Bin, len(bins))
	for i, b := range bins {
		out[i] = b.Clone()
	}
	return out
}
