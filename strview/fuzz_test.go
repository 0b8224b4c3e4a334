package strview

import (
	"strings"
	"testing"
)

// FuzzTakeDropReconstruct checks that TakeFront(n) + DropFront(n)
// reassembles the original view for every valid n.
func FuzzTakeDropReconstruct(f *testing.F) {
	f.Add("", 0)
	f.Add("hello", 2)
	f.Add("hello world", 5)
	f.Add("\x00\x01\x02", 1)

	f.Fuzz(func(t *testing.T, s string, n int) {
		v := New(s)
		if n < 0 || n > v.Len() {
			return
		}
		joined := v.TakeFront(n).String() + v.DropFront(n).String()
		if joined != s {
			t.Errorf("reconstruction mismatch: got %q, want %q", joined, s)
		}
	})
}

// FuzzSplitRoundTrip checks the split contract: when the separator
// occurs, left + sep + right == original and left holds no earlier
// occurrence; otherwise left is the whole view and right is empty.
func FuzzSplitRoundTrip(f *testing.F) {
	f.Add("hello world", byte(' '))
	f.Add("a,b,c", byte(','))
	f.Add("nosep", byte(':'))
	f.Add("", byte('x'))
	f.Add("::", byte(':'))

	f.Fuzz(func(t *testing.T, s string, sep byte) {
		v := New(s)
		l, r := v.Split(sep)

		if strings.IndexByte(s, sep) < 0 {
			if l.String() != s || r.Len() != 0 {
				t.Errorf("missing separator: got (%q, %q)", l.String(), r.String())
			}
			return
		}
		if got := l.String() + string([]byte{sep}) + r.String(); got != s {
			t.Errorf("round trip mismatch: got %q, want %q", got, s)
		}
		if l.Index(sep) != Npos {
			t.Errorf("left side %q contains the separator", l.String())
		}
	})
}

// FuzzCompareTotalOrder checks Compare against the byte-wise
// lexicographic reference and its consistency with Equal.
func FuzzCompareTotalOrder(f *testing.F) {
	f.Add("", "")
	f.Add("a", "b")
	f.Add("ab", "abc")
	f.Add("hello", "hello")

	f.Fuzz(func(t *testing.T, a, b string) {
		va, vb := New(a), New(b)

		if got, want := va.Compare(vb), strings.Compare(a, b); got != want {
			t.Errorf("Compare(%q, %q) = %d, want %d", a, b, got, want)
		}
		if va.Compare(vb) != -vb.Compare(va) {
			t.Errorf("Compare(%q, %q) is not antisymmetric", a, b)
		}
		if va.Equal(vb) != (va.Compare(vb) == 0) {
			t.Errorf("Equal(%q, %q) disagrees with Compare", a, b)
		}
	})
}

// FuzzSliceClamp checks that Slice never fails and always yields a
// sub-view of the original regardless of its arguments.
func FuzzSliceClamp(f *testing.F) {
	f.Add("hello", 0, 5)
	f.Add("hello", 3, 1)
	f.Add("hello", -4, 100)
	f.Add("", 1, 2)

	f.Fuzz(func(t *testing.T, s string, start, end int) {
		v := New(s)
		got := v.Slice(start, end)

		if got.Len() > v.Len() {
			t.Errorf("slice longer than source: %d > %d", got.Len(), v.Len())
		}
		if !strings.Contains(s, got.String()) {
			t.Errorf("slice %q is not a substring of %q", got.String(), s)
		}
	})
}

// FuzzConsumeFront checks that ConsumeFront shortens by exactly the
// prefix length on success and is a no-op on failure.
func FuzzConsumeFront(f *testing.F) {
	f.Add("hello world", "hello")
	f.Add("hello", "world")
	f.Add("", "")
	f.Add("abc", "abcd")

	f.Fuzz(func(t *testing.T, s, prefix string) {
		v := New(s)
		p := New(prefix)
		had := v.HasPrefix(p)

		ok := v.ConsumeFront(p)
		if ok != had {
			t.Errorf("ConsumeFront returned %v, HasPrefix said %v", ok, had)
		}
		if ok {
			if v.Len() != len(s)-len(prefix) {
				t.Errorf("expected length %d after consume, got %d", len(s)-len(prefix), v.Len())
			}
			if v.String() != s[len(prefix):] {
				t.Errorf("expected %q, got %q", s[len(prefix):], v.String())
			}
		} else if v.String() != s {
			t.Errorf("failed consume must leave the view unchanged, got %q", v.String())
		}
	})
}
