package maxheap

import "github.com/opendiamond-go/rcomb/permutation"

// elt is one (key, value) slot. val ownership transfers into the heap on
// Insert and back out to the caller on ExtractMax/Drain.
type elt struct {
	key int
	val *permutation.Permutation
}

// Heap is a binary max-heap over (int, *permutation.Permutation) pairs.
// Internal storage is 1-based (data[0] is unused) so parent/child index
// arithmetic matches the CLR heap this was ported from.
type Heap struct {
	data []elt // data[1..size] are live; data[0] unused
	size int
}

// New allocates a Heap with room for capacity entries.
func New(capacity int) *Heap {
	return &Heap{data: make([]elt, capacity+1)}
}

// Size returns the current number of entries.
func (h *Heap) Size() int { return h.size }

func parent(i int) int { return i >> 1 }
func left(i int) int   { return i << 1 }
func right(i int) int  { return (i << 1) + 1 }

// Insert places (key, value) into the heap. value ownership transfers in.
// Returns ErrFull if the heap is already at capacity.
func (h *Heap) Insert(key int, value *permutation.Permutation) error {
	if h.size == len(h.data)-1 {
		return ErrFull
	}
	h.size++
	i := h.size
	// Sift up: while the parent's key is smaller, pull the parent down.
	for i > 1 && h.data[parent(i)].key < key {
		h.data[i] = h.data[parent(i)]
		i = parent(i)
	}
	h.data[i] = elt{key: key, val: value}

	return nil
}

// siftDown restores the heap property at index i by repeatedly swapping
// with the larger child until no child exceeds the current node.
//
// This fixes a known bug in the original C heapify: its right-child test
// compared data[i].key, instead of the right child's data[r].key, against
// data[largest].key, so the right child was never selected and the heap
// property could be left violated.
// See SPEC_FULL.md §3 / §12 for the rationale for not reproducing it.
func (h *Heap) siftDown(i int) {
	for {
		l, r := left(i), right(i)
		largest := i
		if l <= h.size && h.data[l].key > h.data[largest].key {
			largest = l
		}
		if r <= h.size && h.data[r].key > h.data[largest].key {
			largest = r
		}
		if largest == i {
			return
		}
		h.data[i], h.data[largest] = h.data[largest], h.data[i]
		i = largest
	}
}

// ExtractMax removes and returns the value with the greatest key.
// Returns ErrEmpty if the heap has no entries.
func (h *Heap) ExtractMax() (*permutation.Permutation, error) {
	if h.size == 0 {
		return nil, ErrEmpty
	}
	max := h.data[1]
	h.data[1] = h.data[h.size]
	h.data[h.size] = elt{} // drop the reference so it can be collected
	h.size--
	if h.size > 0 {
		h.siftDown(1)
	}

	return max.val, nil
}

// PeekMax returns the value with the greatest key without removing it.
// Returns ErrEmpty if the heap has no entries.
func (h *Heap) PeekMax() (*permutation.Permutation, error) {
	if h.size == 0 {
		return nil, ErrEmpty
	}

	return h.data[1].val, nil
}

// Drain removes and returns every remaining value, in arbitrary order,
// and resets the heap to empty. Callers own the returned values.
func (h *Heap) Drain() []*permutation.Permutation {
	out := make([]*permutation.Permutation, 0, h.size)
	for i := 1; i <= h.size; i++ {
		out = append(out, h.data[i].val)
		h.data[i] = elt{}
	}
	h.size = 0

	return out
}
