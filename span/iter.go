package span

// Iterator iterates over the elements of a view front to back.
type Iterator[T any] struct {
	s   []T
	idx int
}

// Iter returns an iterator over the elements of the view.
func (v RO[T]) Iter() *Iterator[T] {
	return &Iterator[T]{s: v.s}
}

// Next advances to the next element.
// Returns true if there is an element, false if iteration is complete.
func (it *Iterator[T]) Next() bool {
	if it.idx >= len(it.s) {
		return false
	}
	it.idx++
	return true
}

// Value returns the current element.
func (it *Iterator[T]) Value() T {
	return it.s[it.idx-1]
}

// Index returns the index of the current element.
func (it *Iterator[T]) Index() int {
	return it.idx - 1
}

// ReverseIterator iterates over the elements of a view last to
// first.
type ReverseIterator[T any] struct {
	s   []T
	idx int
}

// ReverseIter returns an iterator traversing the view from its last
// element to its first.
func (v RO[T]) ReverseIter() *ReverseIterator[T] {
	return &ReverseIterator[T]{s: v.s, idx: len(v.s)}
}

// Next moves to the previous element (advances the reverse
// iteration). Returns true if there is an element, false if
// iteration is complete.
func (it *ReverseIterator[T]) Next() bool {
	if it.idx == 0 {
		return false
	}
	it.idx--
	return true
}

// Value returns the current element.
func (it *ReverseIterator[T]) Value() T {
	return it.s[it.idx]
}

// Index returns the index of the current element.
func (it *ReverseIterator[T]) Index() int {
	return it.idx
}
