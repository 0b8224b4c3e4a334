package alloc

import (
	"sync"

	"github.com/dshills/viewkit/strview"
)

// DefaultBlockSize is the arena block size used when NewArena is
// given a non-positive size.
const DefaultBlockSize = 64 * 1024

// Heap allocates every block directly from the Go heap. The zero
// value is ready to use and safe for concurrent use.
type Heap struct{}

// Alloc returns a zeroed block of n bytes.
func (Heap) Alloc(n int) []byte {
	return make([]byte, n)
}

// Arena is a bump allocator. Small requests are carved out of
// fixed-size blocks; oversized requests get dedicated blocks. Alloc
// never fails and never frees; Reset discards everything at once and
// recycles full-size blocks through a pool.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	blockSize int
	cur       []byte   // remaining space in the active block
	blocks    [][]byte // every block handed out since the last Reset
	pool      *sync.Pool
}

// NewArena creates an arena carving from blocks of blockSize bytes.
// A non-positive blockSize selects DefaultBlockSize.
func NewArena(blockSize int) *Arena {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Arena{
		blockSize: blockSize,
		pool: &sync.Pool{
			New: func() any {
				b := make([]byte, blockSize)
				return &b
			},
		},
	}
}

// Alloc returns a block of n bytes carved from the arena. The block
// remains valid until Reset is called.
func (a *Arena) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	if n > a.blockSize {
		// Too big to carve; give it a dedicated block.
		b := make([]byte, n)
		a.blocks = append(a.blocks, b)
		return b
	}
	if len(a.cur) < n {
		bp := a.pool.Get().(*[]byte)
		a.cur = *bp
		a.blocks = append(a.blocks, a.cur)
	}
	b := a.cur[:n:n]
	a.cur = a.cur[n:]
	return b
}

// Reset discards everything allocated since the previous Reset and
// recycles full-size blocks for reuse. Memory previously returned by
// Alloc must not be used afterward.
func (a *Arena) Reset() {
	for i := range a.blocks {
		// Only full-size blocks go back to the pool; dedicated
		// oversized blocks are left to the GC.
		if len(a.blocks[i]) == a.blockSize {
			b := a.blocks[i]
			a.pool.Put(&b)
		}
		a.blocks[i] = nil
	}
	a.blocks = a.blocks[:0]
	a.cur = nil
}

var (
	_ strview.Allocator = Heap{}
	_ strview.Allocator = (*Arena)(nil)
)
