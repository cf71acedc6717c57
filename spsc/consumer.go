// File: spsc/consumer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Dedicated consumer drain loop. Runs on its own locked OS thread,
// optionally pinned to one logical CPU, and polls the ring with a short
// hot-spin before yielding, trading CPU for wake-up latency. The ring
// itself never waits; this is the layered polling the core leaves to
// callers.

package spsc

import (
	"context"
	"runtime"

	"github.com/momentics/hioload-ring/affinity"
	"github.com/momentics/hioload-ring/control"
)

// defaultSpinBudget is the number of consecutive empty polls tolerated
// before the consumer yields its time slice.
const defaultSpinBudget = 256

// ConsumerConfig tunes a PinnedConsumer.
type ConsumerConfig struct {
	// CPU is the logical CPU to pin the drain thread to; negative disables
	// pinning. Pinning is best-effort: on platforms or cgroup setups where
	// it fails the consumer runs unpinned.
	CPU int
	// SpinBudget overrides the empty-poll count before a yield; zero or
	// negative selects the default.
	SpinBudget int
	// Counters, when non-nil, receives pop and idle accounting.
	Counters *control.RingCounters
}

// PinnedConsumer drains r by invoking fn for every popped item until ctx
// is cancelled. It owns the consumer side of the ring: no other context
// may call Pop while it runs. The returned channel is closed exactly once
// when the drain thread has exited.
func PinnedConsumer[T any](ctx context.Context, r *Ring[T], cfg ConsumerConfig, fn func(T)) <-chan struct{} {
	budget := cfg.SpinBudget
	if budget <= 0 {
		budget = defaultSpinBudget
	}
	done := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		defer func() {
			runtime.UnlockOSThread()
			close(done)
		}()
		if cfg.CPU >= 0 {
			_ = affinity.SetAffinity(cfg.CPU) // best-effort, see ConsumerConfig.CPU
		}

		miss := 0
		for {
			if item, ok := r.Pop(); ok {
				fn(item)
				if cfg.Counters != nil {
					cfg.Counters.Pops.Add(1)
				}
				miss = 0
				continue
			}
			select {
			case <-ctx.Done():
				return
			default:
			}
			if miss++; miss >= budget {
				miss = 0
				if cfg.Counters != nil {
					cfg.Counters.Idle.Add(1)
				}
				runtime.Gosched()
			}
		}
	}()
	return done
}
