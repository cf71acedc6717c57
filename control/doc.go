// File: control/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package control provides runtime observability for ring pipelines:
// cheap atomic per-ring counters updated from the hot paths' owners and a
// thread-safe registry for snapshotting them from monitoring code.
package control
