// Package scratch hands out temporary digit buffers for the arithmetic
// routines in bignum.
//
// Small requests are served from an array embedded in the Buffer itself, so
// a Buffer declared as a local variable stays on the goroutine stack when the
// compiler can prove it doesn't escape. Larger requests are rented from a
// size-classed sync.Pool and must be handed back with Release:
//
//	var xb scratch.Buffer
//	defer xb.Release()
//	xd := xb.Get(n)
//
// Contents of a scratch buffer must never be retained past the call that
// borrowed it; copy them into freshly allocated storage first.
package scratch

import (
	"math/bits"
	"sync"
	"sync/atomic"
)

// Threshold is the largest request, in digits, that is served from the
// Buffer's inline array rather than the pool.
const Threshold = 64

// Requests above 1<<maxClass digits bypass the pool entirely; they are rare
// enough that keeping them alive between calls isn't worth the memory.
const (
	minClass = 7 // 128 digits, the first class above Threshold
	maxClass = 22
)

var (
	pools       [maxClass + 1]sync.Pool
	outstanding atomic.Int64
)

// Buffer is a single scoped acquisition. The zero value is ready to use. A
// Buffer must not be copied after Get has been called, and each Buffer may
// be used for one Get at a time.
type Buffer struct {
	inline [Threshold]uint32
	pooled *[]uint32
	held   bool
	rented bool
}

// Get returns a zeroed slice of n digits.
func (b *Buffer) Get(n int) []uint32 {
	if b.held {
		panic("scratch: buffer acquired twice without release")
	}
	b.held = true
	if n <= Threshold {
		s := b.inline[:n]
		clear(s)
		return s
	}

	b.rented = true
	outstanding.Add(1)

	class := sizeClass(n)
	if class > maxClass {
		return make([]uint32, n)
	}

	p, _ := pools[class].Get().(*[]uint32)
	if p == nil {
		s := make([]uint32, 1<<class)
		p = &s
	}
	b.pooled = p
	s := (*p)[:n]
	clear(s)
	return s
}

// Release returns any pooled storage. It is safe to call Release more than
// once, and on a Buffer that never rented anything.
func (b *Buffer) Release() {
	b.held = false
	if !b.rented {
		return
	}
	if b.pooled != nil {
		pools[sizeClass(cap(*b.pooled))].Put(b.pooled)
		b.pooled = nil
	}
	b.rented = false
	outstanding.Add(-1)
}

// Outstanding reports the number of rentals that have not been released.
func Outstanding() int64 {
	return outstanding.Load()
}

func sizeClass(n int) int {
	c := bits.Len(uint(n - 1))
	if c < minClass {
		c = minClass
	}
	return c
}
