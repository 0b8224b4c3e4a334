// Package seq provides a range adaptor that exposes an arbitrary
// element source through a uniform pull-iteration interface.
//
// A Range wraps either a container (a slice) or an explicit Iterator
// and hands the iterator back unchanged, so code can accept "some
// iterable elements" without caring where they came from. Ranges are
// structural wrappers only: they perform no validation, allocate
// nothing, and hold no lifetime of their own beyond the iterator
// state they carry.
//
// Basic usage:
//
//	r := seq.FromSlice([]int{1, 2, 3, 4})
//	for it := r.Drop(1).Iter(); it.Next(); {
//	    process(it.Value()) // 2, 3, 4
//	}
//
// A Range is one-shot: Drop and Collect advance the underlying
// iterator, and a drained range yields nothing further.
package seq
