// control/counters.go
// Author: momentics <momentics@gmail.com>
//
// Per-ring traffic counters. The ring core carries no accounting of its
// own; the producer- and consumer-side owners update these from their
// respective contexts, so each counter has a single writer.

package control

import "sync/atomic"

// RingCounters aggregates traffic through one ring instance.
type RingCounters struct {
	Pushes atomic.Uint64 // items accepted by the ring
	Staged atomic.Uint64 // items deferred to a backlog because the ring was full
	Drops  atomic.Uint64 // items discarded for good by the producer side
	Pops   atomic.Uint64 // items handed to the consumer
	Idle   atomic.Uint64 // consumer back-off yields on an empty ring
}

// Publish writes the current counter values into reg under prefix.
func (rc *RingCounters) Publish(reg *MetricsRegistry, prefix string) {
	reg.Set(prefix+".pushes", rc.Pushes.Load())
	reg.Set(prefix+".staged", rc.Staged.Load())
	reg.Set(prefix+".drops", rc.Drops.Load())
	reg.Set(prefix+".pops", rc.Pops.Load())
	reg.Set(prefix+".idle", rc.Idle.Load())
}
