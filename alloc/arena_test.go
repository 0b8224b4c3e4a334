package alloc

import (
	"testing"

	"github.com/dshills/viewkit/strview"
)

func TestHeapAlloc(t *testing.T) {
	var h Heap

	b := h.Alloc(8)
	if len(b) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(b))
	}
	for i, c := range b {
		if c != 0 {
			t.Errorf("byte %d not zeroed: %d", i, c)
		}
	}
}

func TestArenaAlloc(t *testing.T) {
	a := NewArena(64)

	b1 := a.Alloc(10)
	b2 := a.Alloc(10)
	if len(b1) != 10 || len(b2) != 10 {
		t.Fatalf("expected two 10-byte blocks, got %d and %d", len(b1), len(b2))
	}

	copy(b1, "aaaaaaaaaa")
	copy(b2, "bbbbbbbbbb")
	if string(b1) != "aaaaaaaaaa" {
		t.Errorf("blocks overlap: b1 = %q", b1)
	}
}

func TestArenaBlockCapIsolation(t *testing.T) {
	a := NewArena(64)

	b1 := a.Alloc(4)
	b1 = append(b1, 'x') // must reallocate, not spill into the next carve
	b2 := a.Alloc(4)
	copy(b2, "yyyy")

	if string(b1[:4]) == "yyyy" {
		t.Error("append to a carved block clobbered its neighbor")
	}
}

func TestArenaOversized(t *testing.T) {
	a := NewArena(16)

	b := a.Alloc(100)
	if len(b) != 100 {
		t.Fatalf("expected dedicated 100-byte block, got %d", len(b))
	}
}

func TestArenaZeroAndNegative(t *testing.T) {
	a := NewArena(16)

	if b := a.Alloc(0); b != nil {
		t.Errorf("Alloc(0) should return nil, got %d bytes", len(b))
	}
	if b := a.Alloc(-3); b != nil {
		t.Errorf("Alloc(-3) should return nil, got %d bytes", len(b))
	}
}

func TestArenaDefaultBlockSize(t *testing.T) {
	a := NewArena(0)
	if a.blockSize != DefaultBlockSize {
		t.Errorf("expected default block size %d, got %d", DefaultBlockSize, a.blockSize)
	}
}

func TestArenaReset(t *testing.T) {
	a := NewArena(32)

	for i := 0; i < 10; i++ {
		_ = a.Alloc(8)
	}
	a.Reset()

	if len(a.blocks) != 0 {
		t.Errorf("expected no live blocks after Reset, got %d", len(a.blocks))
	}

	b := a.Alloc(8)
	if len(b) != 8 {
		t.Errorf("arena should be usable after Reset, got %d bytes", len(b))
	}
}

func TestArenaCopyIntegration(t *testing.T) {
	a := NewArena(0)
	src := []byte("payload")

	v := strview.FromBytes(src).Copy(a)
	if v.String() != "payload" {
		t.Fatalf("expected copied view %q, got %q", "payload", v.String())
	}

	// The copy lives in the arena, not the source buffer.
	src[0] = 'x'
	if v.At(0) != 'p' {
		t.Error("arena copy should not alias the source buffer")
	}
}

func TestHeapCopyIntegration(t *testing.T) {
	v := strview.New("hello").Copy(Heap{})
	if v.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", v.String())
	}
}
