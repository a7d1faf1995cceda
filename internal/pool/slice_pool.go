package pool

import "sync"

// SlicePool reuses scratch slices of T across indexer calls.
type SlicePool[T any] struct {
	pool sync.Pool
}

// NewSlicePool creates an empty pool.
func NewSlicePool[T any]() *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any { return &[]T{} },
		},
	}
}

// Get retrieves a slice of exactly size elements.
//
// The contents are unspecified. If the pooled slice has insufficient capacity
// a new one is allocated. The caller must call the returned cleanup function,
// typically with defer, and must not retain the slice afterwards.
//
// Example:
//
//	scratch, cleanup := pool.GetIntSlice(len(targets))
//	defer cleanup()
func (p *SlicePool[T]) Get(size int) ([]T, func()) {
	ptr, _ := p.pool.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { p.pool.Put(ptr) }
}

var intSlicePool = NewSlicePool[int]()

// GetIntSlice retrieves an int slice of the given length from the shared pool.
func GetIntSlice(size int) ([]int, func()) {
	return intSlicePool.Get(size)
}
