package span

import "unsafe"

// RW is a mutable view: an RO plus write access to the same
// elements. Every read operation is promoted from the embedded RO;
// rw.RO is the explicit one-way downgrade to a read-only view. There
// is no path from RO back to RW.
//
// Writes through an RW view are visible through every other view
// aliasing the same memory. Concurrent use of aliasing views where
// at least one side writes is a data race unless the caller supplies
// synchronization.
type RW[T any] struct {
	RO[T]
}

// MutFromSlice returns a mutable view of the elements of s.
func MutFromSlice[T any](s []T) RW[T] {
	return RW[T]{RO[T]{s: s}}
}

// MutSingle returns a mutable view of exactly the one element at p.
func MutSingle[T any](p *T) RW[T] {
	return RW[T]{RO[T]{s: unsafe.Slice(p, 1)}}
}

// MutFromPtr returns a mutable view of the n contiguous elements
// starting at p.
func MutFromPtr[T any](p *T, n int) RW[T] {
	return RW[T]{RO[T]{s: unsafe.Slice(p, n)}}
}

// MutOf returns a mutable view of the given literal elements.
func MutOf[T any](elems ...T) RW[T] {
	return RW[T]{RO[T]{s: elems}}
}

// Set stores x at index i, writing through to the backing buffer.
func (v RW[T]) Set(i int, x T) {
	if i < 0 || i >= len(v.s) {
		panic("span: index out of range")
	}
	v.s[i] = x
}

// Ptr returns a writable reference to the element at index i.
func (v RW[T]) Ptr(i int) *T {
	if i < 0 || i >= len(v.s) {
		panic("span: index out of range")
	}
	return &v.s[i]
}

// Front returns a writable reference to the first element. The view
// must be non-empty.
func (v RW[T]) Front() *T {
	if len(v.s) == 0 {
		panic("span: view is empty")
	}
	return &v.s[0]
}

// Back returns a writable reference to the last element. The view
// must be non-empty.
func (v RW[T]) Back() *T {
	if len(v.s) == 0 {
		panic("span: view is empty")
	}
	return &v.s[len(v.s)-1]
}

// Slice returns the sub-view of count elements starting at offset.
func (v RW[T]) Slice(offset, count int) RW[T] {
	if offset < 0 || count < 0 || offset+count > len(v.s) {
		panic("span: slice out of range")
	}
	return RW[T]{RO[T]{s: v.s[offset : offset+count]}}
}

// SliceFrom returns the sub-view from offset to the end.
func (v RW[T]) SliceFrom(offset int) RW[T] {
	if offset < 0 || offset > len(v.s) {
		panic("span: slice out of range")
	}
	return v.Slice(offset, len(v.s)-offset)
}

// DropFront returns the mutable view with the first n elements
// removed.
func (v RW[T]) DropFront(n int) RW[T] {
	if n < 0 || n > len(v.s) {
		panic("span: dropping more elements than exist")
	}
	return v.Slice(n, len(v.s)-n)
}

// DropBack returns the mutable view with the last n elements
// removed.
func (v RW[T]) DropBack(n int) RW[T] {
	if n < 0 || n > len(v.s) {
		panic("span: dropping more elements than exist")
	}
	return v.Slice(0, len(v.s)-n)
}
