// File: spsc/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package spsc implements a bounded lock-free ring buffer for exactly one
// producer and one consumer context.
//
// The buffer owns a contiguous backing store of capacity slots and two
// indices. The write index is mutated only by the producer, the read index
// only by the consumer; each index is published with a release store and
// observed with an acquire load, which is the entire synchronisation
// protocol. Push and Pop complete in constant time with no allocation,
// no loops, and no waiting, so either side may run in a context where
// blocking is impossible.
//
// One slot is permanently sacrificed so that full and empty remain
// distinguishable from the two indices alone: a buffer constructed with
// capacity N stores at most N-1 elements.
package spsc
