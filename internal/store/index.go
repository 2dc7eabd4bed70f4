package store

import "maps"

// ValueIndex counts how many keys are bound to each value.
// A value whose count drops to zero is removed, never kept at zero.
type ValueIndex struct {
	counts map[int64]int
}

func NewValueIndex() *ValueIndex {
	return &ValueIndex{
		counts: make(map[int64]int),
	}
}

func (vi *ValueIndex) Increment(value int64) {
	vi.counts[value]++
}

func (vi *ValueIndex) Decrement(value int64) {
	count, ok := vi.counts[value]
	if !ok {
		return
	}
	if count <= 1 {
		delete(vi.counts, value)
		return
	}
	vi.counts[value] = count - 1
}

func (vi *ValueIndex) Count(value int64) int {
	return vi.counts[value]
}

func (vi *ValueIndex) Counts() map[int64]int {
	return maps.Clone(vi.counts)
}
