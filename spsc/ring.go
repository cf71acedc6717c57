// File: spsc/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded SPSC ring buffer with modulo indices and one sacrificed slot.
// Producer and consumer indices live on separate cache lines to avoid
// false sharing between the two hot contexts.

package spsc

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[int] = (*Ring[int])(nil)

// Ring is a fixed-capacity circular buffer dedicated to one producer and
// one consumer.
//
// Memory model: Push stores the element into its slot before publishing
// the advanced write index with a release store; Pop copies the element
// out before publishing the advanced read index. The acquire load of the
// opposite index is therefore the only signal either side needs that a
// slot's contents are valid (producer side) or reclaimable (consumer
// side). sync/atomic gives this release/acquire pairing on every Go
// platform; there is no weaker ordering mode in the language.
type Ring[T any] struct {
	data []T
	size uint64 // len(data); usable capacity is size-1

	_     cpu.CacheLinePad
	read  atomic.Uint64 // index of the oldest unread slot; consumer-owned
	_     cpu.CacheLinePad
	write atomic.Uint64 // index of the next slot to write; producer-owned
	_     cpu.CacheLinePad
}

// New allocates a ring buffer whose backing store holds capacity slots,
// of which capacity-1 are usable. The element type must be trivially
// copyable: values are duplicated by plain assignment with no copy hooks,
// so types carrying pointers, slices, maps, strings, channels, functions,
// or interfaces are rejected with api.ErrNotTriviallyCopyable.
func New[T any](capacity int) (*Ring[T], error) {
	if capacity < 2 {
		return nil, api.NewError(api.ErrCodeInvalidCapacity,
			"ring: capacity must hold at least one element").
			WithContext("capacity", capacity)
	}
	if err := checkTriviallyCopyable[T](); err != nil {
		return nil, err
	}
	return &Ring[T]{
		data: make([]T, capacity),
		size: uint64(capacity),
	}, nil
}

// next advances an index by one slot with wrap-around. No division on the
// hot path: both indices always stay inside [0, size).
func (r *Ring[T]) next(i uint64) uint64 {
	i++
	if i == r.size {
		return 0
	}
	return i
}

// Push adds an item; returns false if the buffer is full. Producer side only.
func (r *Ring[T]) Push(item T) bool {
	w := r.write.Load()
	next := r.next(w)
	if next == r.read.Load() {
		return false // full: no mutation, caller keeps the item
	}
	r.data[w] = item
	r.write.Store(next) // release: slot contents become visible first
	return true
}

// Pop removes and returns the oldest item; ok is false if the buffer is
// empty. Consumer side only.
func (r *Ring[T]) Pop() (item T, ok bool) {
	rd := r.read.Load()
	if rd == r.write.Load() {
		return item, false
	}
	item = r.data[rd]
	r.read.Store(r.next(rd)) // release: slot is reclaimable only after the copy
	return item, true
}

// PopInto copies the oldest item into dst and advances the read index.
// If the buffer is empty it returns false and leaves *dst untouched.
// Consumer side only.
func (r *Ring[T]) PopInto(dst *T) bool {
	rd := r.read.Load()
	if rd == r.write.Load() {
		return false
	}
	*dst = r.data[rd]
	r.read.Store(r.next(rd))
	return true
}

// Len returns the number of items currently buffered. Advisory under
// concurrent use: treat it as a snapshot, never as synchronisation.
func (r *Ring[T]) Len() int {
	w := r.write.Load()
	rd := r.read.Load()
	return int((w + r.size - rd) % r.size)
}

// Cap returns the usable capacity, one less than the backing store.
func (r *Ring[T]) Cap() int {
	return int(r.size) - 1
}

// IsEmpty reports whether the buffer holds no items. Advisory snapshot.
func (r *Ring[T]) IsEmpty() bool {
	return r.read.Load() == r.write.Load()
}

// IsFull reports whether a Push would fail. It recomputes the push-side
// collision test (would advancing the write index land on the read index)
// rather than comparing Len against Cap.
func (r *Ring[T]) IsFull() bool {
	return r.next(r.write.Load()) == r.read.Load()
}

// Reset forces the buffer back to the empty state. Not concurrency-safe:
// both producer and consumer must be quiescent. Slot contents are left in
// place until overwritten.
func (r *Ring[T]) Reset() {
	r.read.Store(0)
	r.write.Store(0)
}
