package maxheap

import "errors"

// Sentinel errors for maxheap operations.
var (
	// ErrFull indicates Insert was called with size already at capacity.
	ErrFull = errors.New("maxheap: heap is full")

	// ErrEmpty indicates ExtractMax or PeekMax was called on an empty heap.
	ErrEmpty = errors.New("maxheap: heap is empty")
)
