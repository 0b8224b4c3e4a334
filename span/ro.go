package span

import "unsafe"

// RO is a read-only view of a contiguous run of elements stored in a
// buffer owned elsewhere. It is trivially copyable and intended to
// be passed by value. The zero value is an empty view referencing
// nothing.
//
// An RO never mutates, allocates, or frees. It is not safe to retain
// past the lifetime of the buffer it references.
type RO[T any] struct {
	s []T
}

// FromSlice returns a view of the elements of s, referencing its
// existing storage.
func FromSlice[T any](s []T) RO[T] {
	return RO[T]{s: s}
}

// Single returns a view of exactly the one element at p.
func Single[T any](p *T) RO[T] {
	return RO[T]{s: unsafe.Slice(p, 1)}
}

// FromPtr returns a view of the n contiguous elements starting at p.
// The caller guarantees that p references a live run of at least n
// elements.
func FromPtr[T any](p *T, n int) RO[T] {
	return RO[T]{s: unsafe.Slice(p, n)}
}

// Of returns a view of the given literal elements. The elements are
// materialized at the call site and live as long as the view does.
func Of[T any](elems ...T) RO[T] {
	return RO[T]{s: elems}
}

// Len returns the number of elements in the view.
func (v RO[T]) Len() int {
	return len(v.s)
}

// IsEmpty returns true if the view contains no elements.
func (v RO[T]) IsEmpty() bool {
	return len(v.s) == 0
}

// Data returns the backing slice. The caller must not modify it;
// use RW for write access.
func (v RO[T]) Data() []T {
	return v.s
}

// At returns the element at index i.
func (v RO[T]) At(i int) T {
	if i < 0 || i >= len(v.s) {
		panic("span: index out of range")
	}
	return v.s[i]
}

// First returns the first element. The view must be non-empty.
func (v RO[T]) First() T {
	if len(v.s) == 0 {
		panic("span: view is empty")
	}
	return v.s[0]
}

// Last returns the last element. The view must be non-empty.
func (v RO[T]) Last() T {
	if len(v.s) == 0 {
		panic("span: view is empty")
	}
	return v.s[len(v.s)-1]
}

// DropFront returns the view with the first n elements removed.
func (v RO[T]) DropFront(n int) RO[T] {
	if n < 0 || n > len(v.s) {
		panic("span: dropping more elements than exist")
	}
	return RO[T]{s: v.s[n:]}
}

// DropBack returns the view with the last n elements removed.
func (v RO[T]) DropBack(n int) RO[T] {
	if n < 0 || n > len(v.s) {
		panic("span: dropping more elements than exist")
	}
	return RO[T]{s: v.s[:len(v.s)-n]}
}

// Clone returns an owned, independently-lived copy of the referenced
// elements. This is the one allocating operation on a view.
func (v RO[T]) Clone() []T {
	if v.s == nil {
		return nil
	}
	out := make([]T, len(v.s))
	copy(out, v.s)
	return out
}

// Equal reports whether a and b have the same length and equal
// elements, compared in index order.
func Equal[T comparable](a, b RO[T]) bool {
	if len(a.s) != len(b.s) {
		return false
	}
	for i := range a.s {
		if a.s[i] != b.s[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b RO[T], eq func(T, T) bool) bool {
	if len(a.s) != len(b.s) {
		return false
	}
	for i := range a.s {
		if !eq(a.s[i], b.s[i]) {
			return false
		}
	}
	return true
}
