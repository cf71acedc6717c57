// File: feeder/feeder.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Producer-side burst absorber. A ring refuses items when full; a Feeder
// stages the overflow in an unbounded FIFO and moves it into the ring as
// slots free up. The feeder belongs to the single producer goroutine —
// it layers on top of the ring's SPSC contract without changing it, and
// none of its methods may be called concurrently.

package feeder

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
)

// Feeder stages items in front of a bounded ring.
type Feeder[T any] struct {
	ring     api.Ring[T]
	staged   *queue.Queue
	counters *control.RingCounters // optional
}

// New returns a feeder in front of r. Counters may be nil.
func New[T any](r api.Ring[T], counters *control.RingCounters) *Feeder[T] {
	return &Feeder[T]{
		ring:     r,
		staged:   queue.New(),
		counters: counters,
	}
}

// Offer hands one item to the pipeline. It goes straight into the ring
// when nothing is staged and the ring has room; otherwise it is staged
// behind the existing backlog to preserve FIFO order. Offer never fails:
// the backlog is unbounded.
func (f *Feeder[T]) Offer(item T) {
	if f.staged.Length() == 0 && f.ring.Push(item) {
		f.count(func(c *control.RingCounters) { c.Pushes.Add(1) })
		return
	}
	f.staged.Add(item)
	f.count(func(c *control.RingCounters) { c.Staged.Add(1) })
}

// Drain moves staged items into the ring until either runs out, and
// returns the number moved. The producer calls this opportunistically,
// typically once per Offer batch or poll tick.
func (f *Feeder[T]) Drain() int {
	moved := 0
	for f.staged.Length() > 0 {
		item := f.staged.Peek().(T)
		if !f.ring.Push(item) {
			break
		}
		f.staged.Remove()
		moved++
		f.count(func(c *control.RingCounters) { c.Pushes.Add(1) })
	}
	return moved
}

// Pending returns the staged backlog size.
func (f *Feeder[T]) Pending() int {
	return f.staged.Length()
}

func (f *Feeder[T]) count(fn func(*control.RingCounters)) {
	if f.counters != nil {
		fn(f.counters)
	}
}
