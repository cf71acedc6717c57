// File: affinity/affinity_test.go
// Author: momentics <momentics@gmail.com>

package affinity

import (
	"runtime"
	"testing"
)

func TestSetAffinity_CurrentThread(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := SetAffinity(0); err != nil {
		// Pinning is best-effort: containers and restricted cpusets may
		// refuse it, and non-Linux platforms do not support it at all.
		t.Skipf("pinning unavailable here: %v", err)
	}
}

func TestSetAffinity_RejectsNegativeCPU(t *testing.T) {
	if err := SetAffinity(-1); err == nil {
		t.Error("negative CPU index must be rejected")
	}
}
