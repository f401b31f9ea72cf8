package pools

import (
	"strings"
	"sync"
)

// SlicePool recycles slices of T between benchmark repetitions.
// Slices whose capacity exceeds MaxCap are dropped instead of pooled.
type SlicePool[T any] struct {
	pool   sync.Pool
	MaxCap int
}

// NewSlicePool creates a pool that keeps slices up to maxCap elements.
// A maxCap of zero keeps every slice.
func NewSlicePool[T any](maxCap int) *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() interface{} {
				slice := make([]T, 0)
				return &slice
			},
		},
		MaxCap: maxCap,
	}
}

// Get returns a slice of length n. The contents are not cleared.
func (p *SlicePool[T]) Get(n int) []T {
	slicePtr := p.pool.Get().(*[]T)
	if cap(*slicePtr) < n {
		return make([]T, n)
	}
	return (*slicePtr)[:n]
}

// Clone returns a pooled copy of src.
func (p *SlicePool[T]) Clone(src []T) []T {
	dst := p.Get(len(src))
	copy(dst, src)
	return dst
}

// Put returns a slice to the pool
func (p *SlicePool[T]) Put(slice []T) {
	if slice == nil || (p.MaxCap > 0 && cap(slice) > p.MaxCap) {
		return
	}
	emptySlice := slice[:0]
	p.pool.Put(&emptySlice)
}

// NewBuilderPool creates a string builder pool with the given initial capacity
func NewBuilderPool(size int) *sync.Pool {
	return &sync.Pool{
		New: func() interface{} {
			builder := &strings.Builder{}
			builder.Grow(size)
			return builder
		},
	}
}

// GetBuilderFromPool gets a string builder from the pool and resets it
func GetBuilderFromPool(pool *sync.Pool) *strings.Builder {
	builder := pool.Get().(*strings.Builder)
	builder.Reset()
	return builder
}

// ReturnBuilderToPool returns a string builder to the pool
func ReturnBuilderToPool(pool *sync.Pool, builder *strings.Builder) {
	pool.Put(builder)
}
