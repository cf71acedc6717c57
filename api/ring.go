// Package api
// Author: momentics <momentics@gmail.com>
//
// Contract for bounded single-producer/single-consumer ring buffers.
//
// Exactly one goroutine (or interrupt-style context) may call Push and
// exactly one may call Pop on a given instance. No operation blocks,
// loops, or allocates; full and empty are ordinary boolean outcomes.

package api

// Ring is a fixed-capacity SPSC ring buffer contract.
type Ring[T any] interface {
	// Push adds an item, returns false if full. Producer side only.
	Push(item T) bool
	// Pop removes the oldest item, returns false if empty. Consumer side only.
	Pop() (T, bool)
	// Len returns the current number of items. Advisory under concurrency:
	// either side may advance its index between the load and the caller's
	// use of the result.
	Len() int
	// Cap returns the usable capacity (one slot less than the backing store).
	Cap() int
	// IsEmpty reports whether the buffer holds no items. Advisory snapshot.
	IsEmpty() bool
	// IsFull reports whether a Push would fail. Advisory snapshot.
	IsFull() bool
	// Reset forces the buffer back to empty. Not concurrency-safe: both
	// producer and consumer must be quiescent for the duration of the call.
	Reset()
}
