// Package span provides non-owning views over contiguous element
// sequences: a read-only view RO and a mutable view RW.
//
// A view is a value type holding a reference to a buffer owned
// elsewhere. It never allocates, frees, or resizes; copying a view
// copies only the reference. The package provides:
//
//   - O(1) construction from slices, single elements, literal
//     element lists, and raw pointer+length extents
//   - Bounds-checked element access with fail-fast panics on caller
//     misuse
//   - Sub-views via DropFront, DropBack, and (on RW) Slice
//   - Element-wise equality and an explicit owned-copy escape hatch
//   - Forward and reverse pull iterators
//
// Basic usage:
//
//	data := []int{1, 2, 3, 4}
//	v := span.FromSlice(data)
//	tail := v.DropFront(1)         // view of 2, 3, 4
//	owned := tail.Clone()          // independent copy
//
//	m := span.MutFromSlice(data)
//	m.Set(0, 9)                    // writes through to data
//	r := m.RO                      // one-way read-only downgrade
//	_ = r
//
// Lifetime and aliasing:
//
// A view must not outlive the buffer it references; the contract is
// the caller's to uphold and is not runtime-checked. Read-only views
// over a buffer are safe to share across goroutines as long as the
// buffer is not concurrently mutated. Writes through an RW view race
// with any concurrent access through an aliasing view unless the
// caller supplies synchronization; the package provides none.
package span
