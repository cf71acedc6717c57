// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// live in separate files (affinity_linux.go, affinity_stub.go) guarded by
// build tags.

package affinity

// SetAffinity pins the calling OS thread to a given logical CPU on
// supported platforms. Callers that need the pin to stick must hold the
// thread with runtime.LockOSThread first. On unsupported platforms it
// returns an error wrapping api.ErrNotSupported.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}
