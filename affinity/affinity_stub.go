//go:build !linux

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Fallback for platforms without thread affinity support. Callers treat
// pinning as best-effort, so the error is informative, not fatal.

package affinity

import (
	"github.com/momentics/hioload-ring/api"
)

func setAffinityPlatform(cpuID int) error {
	return api.NewError(api.ErrCodeNotSupported,
		"affinity: thread pinning unavailable on this platform").
		WithContext("cpu", cpuID)
}
