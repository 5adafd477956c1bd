// Package core - Instance construction and the one-shot deterministic shuffle.
//
// Design:
//   - Determinism: the shuffle is seeded (default 1; an explicit seed of 0
//     selects the same default) and applied exactly once,
//     at construction; it is a property of the Instance, never of an algorithm.
//   - No logging, no panics on malformed input - only sentinel errors.
//   - Item identifiers are assigned after the shuffle, so they are a
//     contiguous 0-based range over the post-shuffle order.
package core

import "math/rand"

// defaultShuffleSeed is the fixed "zero" seed used when no WithShuffleSeed
// option is given. The value is arbitrary but stable, mirroring the
// seed==0-means-default-stream policy used for deterministic heuristics
// throughout this module.
const defaultShuffleSeed int64 = 1

// Instance is an immutable problem instance: a name, a dimension count, a
// shared bin-capacity vector, and a sequence of Items already shuffled into
// their final, fixed order.
type Instance struct {
	name    string
	dim     int
	binCaps []int64
	items   []Item
}

// InstanceOption configures Instance construction.
type InstanceOption func(*instanceConfig)

type instanceConfig struct {
	seed    int64
	seedSet bool
}

// WithShuffleSeed overrides the default shuffle seed. Passing the same seed
// for the same raw item sizes always yields the same shuffled order.
func WithShuffleSeed(seed int64) InstanceOption {
	return func(cfg *instanceConfig) {
		cfg.seed = seed
		cfg.seedSet = true
	}
}

// NewInstance validates dim, binCaps and sizes, then builds an Instance
// whose Items are a deterministic, seeded shuffle of the input rows.
//
// Contracts:
//   - dim >= 1.
//   - len(binCaps) == dim and every binCaps[h] > 0.
//   - every row in sizes has len(row) >= dim (only the first dim entries are
//     used, mirroring the external .vbp format where trailing columns are
//     ignored) and every used entry is >= 0.
//
// The shuffle always runs (seed defaults to 1 when unset, never "off") -
// per the data model, an instance's item order is fixed at construction,
// not toggled per algorithm run.
//
// Complexity: O(n*d) to validate and normalize, O(n) to shuffle.
func NewInstance(name string, dim int, binCaps []int64, sizes [][]int64, opts ...InstanceOption) (*Instance, error) {
	if dim < 1 {
		return nil, ErrInvalidDimension
	}
	if len(binCaps) != dim {
		return nil, ErrInvalidCapacity
	}
	for _, c := range binCaps {
		if c <= 0 {
			return nil, ErrInvalidCapacity
		}
	}

	caps := make([]int64, dim)
	copy(caps, binCaps)

	n := len(sizes)
	rawItems := make([]Item, n)
	for i, row := range sizes {
		if len(row) < dim {
			return nil, ErrSizeDimMismatch
		}
		itemSizes := make([]int64, dim)
		normSizes := make([]float64, dim)
		for h := 0; h < dim; h++ {
			s := row[h]
			if s < 0 {
				return nil, ErrNegativeSize
			}
			itemSizes[h] = s
			normSizes[h] = float64(s) / float64(caps[h])
		}
		rawItems[i] = Item{Sizes: itemSizes, NormSizes: normSizes}
	}

	cfg := instanceConfig{seed: defaultShuffleSeed}
	for _, o := range opts {
		o(&cfg)
	}
	seed := cfg.seed
	if cfg.seedSet && seed == 0 {
		seed = defaultShuffleSeed
	}

	order := permRange(n, rand.New(rand.NewSource(seed)))
	items := make([]Item, n)
	for newID, oldIdx := range order {
		it := rawItems[oldIdx]
		it.ID = newID
		items[newID] = it
	}

	return &Instance{name: name, dim: dim, binCaps: caps, items: items}, nil
}

// permRange returns a deterministic Fisher-Yates shuffle of 0..n-1 driven by rng.
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Name returns the instance's display name.
func (inst *Instance) Name() string { return inst.name }

// Dimensions returns the per-item/per-bin dimension count d.
func (inst *Instance) Dimensions() int { return inst.dim }

// BinCapacities returns the shared, read-only bin capacity vector. Callers
// must not mutate the returned slice.
func (inst *Instance) BinCapacities() []int64 { return inst.binCaps }

// NumItems returns the item count n.
func (inst *Instance) NumItems() int { return len(inst.items) }

// Items returns the instance's fixed, post-shuffle item sequence. Callers
// must not mutate the returned slice or its elements.
func (inst *Instance) Items() []Item { return inst.items }

// NewEmptyBin creates a Bin sharing this instance's capacity vector, with
// the given creation-order id.
func (inst *Instance) NewEmptyBin(id int) *Bin {
	return NewBin(id, inst.binCaps)
}
