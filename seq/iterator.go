package seq

// Iterator is the pull-style iteration contract shared across the
// view packages. Next advances to the next element and reports
// whether one exists; Value returns the current element and is only
// meaningful after a Next call that returned true.
type Iterator[T any] interface {
	Next() bool
	Value() T
}

// SliceIterator iterates over the elements of a slice front to back.
// It references the slice's storage and never copies it.
type SliceIterator[T any] struct {
	s   []T
	idx int
}

// NewSliceIterator creates an iterator over the elements of s.
func NewSliceIterator[T any](s []T) *SliceIterator[T] {
	return &SliceIterator[T]{s: s}
}

// Next advances to the next element.
// Returns true if there is an element, false if iteration is complete.
func (it *SliceIterator[T]) Next() bool {
	if it.idx >= len(it.s) {
		return false
	}
	it.idx++
	return true
}

// Value returns the current element.
func (it *SliceIterator[T]) Value() T {
	return it.s[it.idx-1]
}

// Index returns the index of the current element.
func (it *SliceIterator[T]) Index() int {
	return it.idx - 1
}
