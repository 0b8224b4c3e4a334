package strview

// ByteIterator iterates over the bytes of a view front to back.
type ByteIterator struct {
	s   string
	idx int
}

// Iter returns an iterator over the bytes of the view.
func (v View) Iter() *ByteIterator {
	return &ByteIterator{s: v.s}
}

// Next advances to the next byte.
// Returns true if there is a byte, false if iteration is complete.
func (it *ByteIterator) Next() bool {
	if it.idx >= len(it.s) {
		return false
	}
	it.idx++
	return true
}

// Value returns the current byte.
func (it *ByteIterator) Value() byte {
	return it.s[it.idx-1]
}

// Offset returns the index of the current byte.
func (it *ByteIterator) Offset() int {
	return it.idx - 1
}

// ReverseByteIterator iterates over the bytes of a view last to
// first.
type ReverseByteIterator struct {
	s   string
	idx int
}

// ReverseIter returns an iterator traversing the view from its last
// byte to its first.
func (v View) ReverseIter() *ReverseByteIterator {
	return &ReverseByteIterator{s: v.s, idx: len(v.s)}
}

// Next moves to the previous byte (advances the reverse iteration).
// Returns true if there is a byte, false if iteration is complete.
func (it *ReverseByteIterator) Next() bool {
	if it.idx == 0 {
		return false
	}
	it.idx--
	return true
}

// Value returns the current byte.
func (it *ReverseByteIterator) Value() byte {
	return it.s[it.idx]
}

// Offset returns the index of the current byte.
func (it *ReverseByteIterator) Offset() int {
	return it.idx
}
