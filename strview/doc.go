// Package strview provides a non-owning read-only view of a byte
// string: a reference to character data stored in a buffer owned
// elsewhere, with string-oriented search, comparison, slicing, and
// split operations.
//
// A View is a value type the size of a string header. It references
// storage it does not own, which need not be NUL-terminated, and it
// never reads past its length. The package provides:
//
//   - O(1) construction from strings, byte slices (zero-copy), and
//     NUL-terminated buffers
//   - Byte-wise lexicographic comparison and equality
//   - Searches returning the Npos sentinel instead of failing
//   - Clamping sub-view operations (Substr, Slice, TakeFront,
//     TakeBack) that never fail on out-of-range arguments
//   - Prefix/suffix tests and in-place Consume variants
//   - Explicit owned-copy conversions and an allocator-based copy
//     escape hatch
//
// Basic usage:
//
//	v := strview.New("hello world")
//	left, right := v.Split(' ')        // "hello", "world"
//	i := v.Index('o')                  // 4
//	if v.ConsumeFront(strview.New("hello")) {
//	    // v is now " world"
//	}
//
// Views are byte-level: no Unicode segmentation or encoding
// awareness is provided or implied.
//
// Lifetime: a view must not outlive the buffer it references. Views
// constructed with FromBytes alias the caller's bytes, so later
// mutations of those bytes remain visible through the view.
package strview
