// File: bytering/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SPSC circular byte buffer for frame-byte hand-off, e.g. between a
// receive path that produces raw bytes and application code that consumes
// them. Same single-writer/single-reader index protocol as package spsc,
// but byte-stream oriented: free-running 64-bit positions, partial
// progress instead of all-or-nothing, and an end-of-stream Close.

package bytering

import (
	"errors"
	"io"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
)

// ErrClosed indicates the ring has been closed; further writes are disallowed.
var ErrClosed = errors.New("bytering: closed")

// minCapacity is the smallest backing store allocated.
const minCapacity = 16

// Ring is a single-producer/single-consumer circular byte buffer.
// Capacity is a power of two. One goroutine may write and one may read
// concurrently; neither operation blocks — each returns immediately with
// the progress made, which may be zero.
type Ring struct {
	// Free-running byte positions. Writer owns w, reader owns r; each is
	// published with a release store after the corresponding copy.
	w atomic.Uint64
	_ cpu.CacheLinePad
	r atomic.Uint64
	_ cpu.CacheLinePad

	closed atomic.Uint32

	buf  []byte
	mask uint64 // capacity-1; capacity is always a power of two
	size uint64
}

// New returns a ring with at least minCap bytes of capacity, rounded up
// to a power of two and at least 16.
func New(minCap int) (*Ring, error) {
	if minCap <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidCapacity,
			"bytering: capacity must be positive").
			WithContext("capacity", minCap)
	}
	capacity := roundUpPowerOfTwo(minCap)
	return &Ring{
		buf:  make([]byte, capacity),
		mask: capacity - 1,
		size: capacity,
	}, nil
}

// roundUpPowerOfTwo returns the next power of two >= n, minimum minCapacity.
func roundUpPowerOfTwo(n int) uint64 {
	x := uint64(minCapacity)
	for x < uint64(n) {
		x <<= 1
	}
	return x
}

// TryWrite copies up to len(p) bytes into the ring and returns the number
// copied. It never blocks: a full ring yields (0, nil). After Close it
// returns (0, ErrClosed). Producer side only.
func (rb *Ring) TryWrite(p []byte) (int, error) {
	if rb.closed.Load() != 0 {
		return 0, ErrClosed
	}
	w := rb.w.Load()
	r := rb.r.Load()
	free := rb.size - (w - r)
	n := uint64(len(p))
	if n > free {
		n = free
	}
	if n == 0 {
		return 0, nil
	}

	// At most two contiguous segments: head of the store may wrap.
	off := w & rb.mask
	first := rb.size - off
	if first > n {
		first = n
	}
	copy(rb.buf[off:off+first], p[:first])
	copy(rb.buf[:n-first], p[first:n])

	rb.w.Store(w + n) // release: bytes visible before the position
	return int(n), nil
}

// TryRead copies up to len(p) bytes out of the ring and returns the
// number copied. An empty ring yields (0, nil) while open and (0, io.EOF)
// once closed and drained. Consumer side only.
func (rb *Ring) TryRead(p []byte) (int, error) {
	w := rb.w.Load()
	r := rb.r.Load()
	avail := w - r
	if avail == 0 {
		if rb.closed.Load() != 0 {
			return 0, io.EOF
		}
		return 0, nil
	}
	n := uint64(len(p))
	if n > avail {
		n = avail
	}
	if n == 0 {
		return 0, nil
	}

	off := r & rb.mask
	first := rb.size - off
	if first > n {
		first = n
	}
	copy(p[:first], rb.buf[off:off+first])
	copy(p[first:n], rb.buf[:n-first])

	rb.r.Store(r + n) // release: bytes copied out before the slot is reusable
	return int(n), nil
}

// Len returns the number of buffered bytes. Advisory snapshot.
func (rb *Ring) Len() int {
	return int(rb.w.Load() - rb.r.Load())
}

// Cap returns the byte capacity of the ring.
func (rb *Ring) Cap() int {
	return int(rb.size)
}

// Close marks the ring end-of-stream. Writes fail with ErrClosed; reads
// drain the remaining bytes, then report io.EOF.
func (rb *Ring) Close() {
	rb.closed.Store(1)
}

// Closed reports whether Close has been called.
func (rb *Ring) Closed() bool {
	return rb.closed.Load() != 0
}

// Reset reopens the ring and discards buffered bytes. Not
// concurrency-safe: both sides must be quiescent.
func (rb *Ring) Reset() {
	rb.r.Store(0)
	rb.w.Store(0)
	rb.closed.Store(0)
}
