//go:build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux implementation of thread CPU affinity via sched_setaffinity(2)
// on the calling thread (pid 0).

package affinity

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ring/api"
)

// setAffinityPlatform sets thread affinity to a given CPU for Linux.
func setAffinityPlatform(cpuID int) error {
	var set unix.CPUSet
	if cpuID < 0 || cpuID >= len(set)*64 {
		// Bounds-check before Set: CPUSet silently ignores indices past its
		// last word, a negative index would not.
		return fmt.Errorf("affinity: cpu %d out of range: %w", cpuID, api.ErrNotSupported)
	}
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity cpu %d: %w", cpuID, err)
	}
	return nil
}
