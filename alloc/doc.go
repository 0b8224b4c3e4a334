// Package alloc provides allocators for the view copy escape hatch:
// implementations of the one capability strview.View.Copy requires,
// handing back byte blocks whose ownership passes entirely to the
// caller.
//
// Two allocators are provided:
//
//   - Heap: plain Go-heap allocation; the zero value is ready to use
//   - Arena: a bump allocator carving small requests out of pooled
//     fixed-size blocks, with Reset recycling the blocks
//
// Basic usage:
//
//	a := alloc.NewArena(0) // default block size
//	v := strview.New("payload").Copy(a)
//	// ... use v ...
//	a.Reset() // v's storage is recycled; v must not be used again
//
// Arena is not safe for concurrent use; Heap is.
package alloc
