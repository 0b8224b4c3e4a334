package seq

// Range adapts an element source into a uniform iterable. It stores
// an iterator and exposes it unchanged; construction from a slice is
// the container form, New is the explicit-iterator form.
//
// A Range carries live iterator state, so it is one-shot: once its
// elements have been consumed (via Drop, Collect, or direct Iter
// use) it yields nothing further.
type Range[T any] struct {
	it Iterator[T]
}

// New creates a range over an explicit iterator.
func New[T any](it Iterator[T]) Range[T] {
	return Range[T]{it: it}
}

// FromSlice creates a range over the elements of s.
func FromSlice[T any](s []T) Range[T] {
	return Range[T]{it: NewSliceIterator(s)}
}

// Iter returns the stored iterator, unchanged.
func (r Range[T]) Iter() Iterator[T] {
	return r.it
}

// Drop advances the start of the range past the first n elements.
// The range must have at least n elements remaining; when it does
// not, the shortened range is simply empty. Violating the length
// precondition is caller misuse, not a checked error.
func (r Range[T]) Drop(n int) Range[T] {
	for i := 0; i < n; i++ {
		if !r.it.Next() {
			break
		}
	}
	return r
}

// Collect drains the remaining elements into a fresh slice.
func (r Range[T]) Collect() []T {
	var out []T
	for r.it.Next() {
		out = append(out, r.it.Value())
	}
	return out
}
