package strview

import (
	"bytes"
	"io"
	"math"
	"strings"
	"unsafe"
)

// Npos is the absent-index sentinel returned by searches when no
// match exists. It is the maximum representable index, so it also
// serves as a saturating "rest of the view" count for Substr.
const Npos = math.MaxInt

// View is a non-owning read-only view of a byte string. It is a
// value type and should be passed by value; the zero value is an
// empty view referencing nothing.
//
// All methods use value receivers except ConsumeFront and
// ConsumeBack, which re-point the view itself (they never write to
// the backing buffer).
type View struct {
	s string
}

// New returns a view of s, referencing its existing storage.
func New(s string) View {
	return View{s: s}
}

// FromBytes returns a view aliasing b without copying. Mutations to
// b remain visible through the view. FromBytes(nil) is the
// sanctioned way to turn an absent buffer into a defined empty view.
func FromBytes(b []byte) View {
	if len(b) == 0 {
		return View{}
	}
	return View{s: unsafe.String(unsafe.SliceData(b), len(b))}
}

// Of returns a view of the given literal bytes.
func Of(b ...byte) View {
	return FromBytes(b)
}

// Terminated returns a view of b up to, and not including, the first
// NUL byte. When b carries no terminator the view covers all of b.
func Terminated(b []byte) View {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return FromBytes(b)
}

// Len returns the length of the view in bytes.
func (v View) Len() int {
	return len(v.s)
}

// IsEmpty returns true if the view contains no bytes.
func (v View) IsEmpty() bool {
	return len(v.s) == 0
}

// Data returns a zero-copy alias of the referenced bytes. The caller
// must not modify the returned slice.
func (v View) Data() []byte {
	if len(v.s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(v.s), len(v.s))
}

// At returns the byte at index i.
func (v View) At(i int) byte {
	if i < 0 || i >= len(v.s) {
		panic("strview: index out of range")
	}
	return v.s[i]
}

// Front returns the first byte. The view must be non-empty.
func (v View) Front() byte {
	if len(v.s) == 0 {
		panic("strview: view is empty")
	}
	return v.s[0]
}

// Back returns the last byte. The view must be non-empty.
func (v View) Back() byte {
	if len(v.s) == 0 {
		panic("strview: view is empty")
	}
	return v.s[len(v.s)-1]
}

// Compare compares v and o byte-wise lexicographically.
// Returns -1 if v < o, 0 if v == o, 1 if v > o; when the overlapping
// prefixes match, the shorter view is less.
func (v View) Compare(o View) int {
	return strings.Compare(v.s, o.s)
}

// Equal reports whether v and o have the same length and bytes. It
// is cheaper than Compare when ordering is not needed.
func (v View) Equal(o View) bool {
	return v.s == o.s
}

// Less reports whether v orders before o under Compare.
func (v View) Less(o View) bool {
	return v.s < o.s
}

// Index returns the index of the first occurrence of c, or Npos when
// c does not occur.
func (v View) Index(c byte) int {
	if i := strings.IndexByte(v.s, c); i >= 0 {
		return i
	}
	return Npos
}

// IndexFrom returns the first index >= from whose byte equals c, or
// Npos when none exists. A from at or beyond the view's length
// yields Npos without error.
func (v View) IndexFrom(c byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= len(v.s) {
		return Npos
	}
	if i := strings.IndexByte(v.s[from:], c); i >= 0 {
		return from + i
	}
	return Npos
}

// LastIndex returns the index of the last occurrence of c, or Npos
// when c does not occur.
func (v View) LastIndex(c byte) int {
	return v.LastIndexBefore(c, Npos)
}

// LastIndexBefore returns the last index < min(from, Len()) whose
// byte equals c, scanning backward, or Npos when none exists.
func (v View) LastIndexBefore(c byte, from int) int {
	if from > len(v.s) {
		from = len(v.s)
	}
	if from <= 0 {
		return Npos
	}
	if i := strings.LastIndexByte(v.s[:from], c); i >= 0 {
		return i
	}
	return Npos
}

// Count returns the number of occurrences of c in the view.
func (v View) Count(c byte) int {
	n := 0
	for i := 0; i < len(v.s); i++ {
		if v.s[i] == c {
			n++
		}
	}
	return n
}

// Substr returns the sub-view of n bytes starting at start. Both
// arguments clamp: start to [0, Len()], n to the bytes remaining.
// Pass Npos for n to take the rest of the view. Substr never fails.
func (v View) Substr(start, n int) View {
	if start < 0 {
		start = 0
	}
	if start > len(v.s) {
		start = len(v.s)
	}
	if rest := len(v.s) - start; n < 0 || n > rest {
		n = rest
	}
	return View{s: v.s[start : start+n]}
}

// Slice returns the sub-view [start, end). Both bounds clamp to the
// view's extent and end is raised to start when it falls below it,
// producing an empty view rather than failing.
func (v View) Slice(start, end int) View {
	if start < 0 {
		start = 0
	}
	if start > len(v.s) {
		start = len(v.s)
	}
	if end > len(v.s) {
		end = len(v.s)
	}
	if end < start {
		end = start
	}
	return View{s: v.s[start:end]}
}

// TakeFront returns the first n bytes of the view, or the whole view
// when n >= Len().
func (v View) TakeFront(n int) View {
	if n >= len(v.s) {
		return v
	}
	if n < 0 {
		n = 0
	}
	return v.DropBack(len(v.s) - n)
}

// TakeBack returns the last n bytes of the view, or the whole view
// when n >= Len().
func (v View) TakeBack(n int) View {
	if n >= len(v.s) {
		return v
	}
	if n < 0 {
		n = 0
	}
	return v.DropFront(len(v.s) - n)
}

// DropFront returns the view with the first n bytes removed.
func (v View) DropFront(n int) View {
	if n < 0 || n > len(v.s) {
		panic("strview: dropping more bytes than exist")
	}
	return View{s: v.s[n:]}
}

// DropBack returns the view with the last n bytes removed.
func (v View) DropBack(n int) View {
	if n < 0 || n > len(v.s) {
		panic("strview: dropping more bytes than exist")
	}
	return View{s: v.s[:len(v.s)-n]}
}

// HasPrefix reports whether the view begins with p. The empty prefix
// matches every view.
func (v View) HasPrefix(p View) bool {
	return strings.HasPrefix(v.s, p.s)
}

// HasSuffix reports whether the view ends with p. The empty suffix
// matches every view.
func (v View) HasSuffix(p View) bool {
	return strings.HasSuffix(v.s, p.s)
}

// ConsumeFront drops prefix p from the view and returns true when
// the view begins with p; otherwise it leaves the view unchanged and
// returns false. Only the view's own reference moves; the backing
// buffer is untouched.
func (v *View) ConsumeFront(p View) bool {
	if !v.HasPrefix(p) {
		return false
	}
	v.s = v.s[len(p.s):]
	return true
}

// ConsumeBack drops suffix p from the view and returns true when the
// view ends with p; otherwise it leaves the view unchanged and
// returns false.
func (v *View) ConsumeBack(p View) bool {
	if !v.HasSuffix(p) {
		return false
	}
	v.s = v.s[:len(v.s)-len(p.s)]
	return true
}

// Split splits the view around the first occurrence of sep. When sep
// occurs, left holds everything before it and right everything after
// it, with sep excluded from both. When sep does not occur, left is
// the whole view and right is empty.
func (v View) Split(sep byte) (left, right View) {
	i := strings.IndexByte(v.s, sep)
	if i < 0 {
		return v, View{}
	}
	return View{s: v.s[:i]}, View{s: v.s[i+1:]}
}

// String returns the contents as an owned, independent string. An
// absent-data view converts to "".
func (v View) String() string {
	return strings.Clone(v.s)
}

// Bytes returns an owned copy of the contents.
func (v View) Bytes() []byte {
	return []byte(v.s)
}

// Append appends the contents to dst and returns the extended slice.
func (v View) Append(dst []byte) []byte {
	return append(dst, v.s...)
}

// WriteTo writes the contents to w.
func (v View) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.s)
	return int64(n), err
}

// Allocator is the single capability Copy requires of a
// collaborating allocator: hand back a block of n bytes. The library
// never frees the block; ownership follows the allocator's own
// lifecycle rules.
type Allocator interface {
	Alloc(n int) []byte
}

// Copy allocates Len() bytes from a, copies the referenced bytes
// into them, and returns a view over the freshly allocated buffer.
// An empty view is returned as-is without invoking the allocator.
func (v View) Copy(a Allocator) View {
	if len(v.s) == 0 {
		return View{}
	}
	b := a.Alloc(len(v.s))
	copy(b, v.s)
	return FromBytes(b)
}
