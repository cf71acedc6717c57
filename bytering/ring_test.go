// File: bytering/ring_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Byte-stream ring tests: partial progress, wrap-around integrity,
// close/drain semantics, and a cross-goroutine pattern check.
package bytering

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"testing"

	"github.com/momentics/hioload-ring/api"
)

func TestNew_CapacityRounding(t *testing.T) {
	cases := map[int]int{1: 16, 16: 16, 17: 32, 100: 128, 4096: 4096}
	for minCap, want := range cases {
		r, err := New(minCap)
		if err != nil {
			t.Fatalf("New(%d): %v", minCap, err)
		}
		if r.Cap() != want {
			t.Errorf("New(%d).Cap() = %d, want %d", minCap, r.Cap(), want)
		}
	}
	_, err := New(0)
	if !errors.Is(err, api.ErrInvalidCapacity) {
		t.Errorf("New(0) err = %v, want ErrInvalidCapacity", err)
	}
	var structured *api.Error
	if !errors.As(err, &structured) {
		t.Fatalf("New(0) err = %T, want *api.Error", err)
	}
	if structured.Code != api.ErrCodeInvalidCapacity || structured.Context["capacity"] != 0 {
		t.Errorf("New(0) structured err = %+v, want code and rejected capacity", structured)
	}
}

func TestRing_WriteReadCycle(t *testing.T) {
	r, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	msg := []byte("hello, ring")
	n, err := r.TryWrite(msg)
	if err != nil || n != len(msg) {
		t.Fatalf("TryWrite = (%d, %v), want (%d, nil)", n, err, len(msg))
	}
	if r.Len() != len(msg) {
		t.Errorf("Len = %d, want %d", r.Len(), len(msg))
	}

	out := make([]byte, 64)
	n, err = r.TryRead(out)
	if err != nil || n != len(msg) {
		t.Fatalf("TryRead = (%d, %v), want (%d, nil)", n, err, len(msg))
	}
	if !bytes.Equal(out[:n], msg) {
		t.Errorf("read %q, want %q", out[:n], msg)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d after drain, want 0", r.Len())
	}
}

func TestRing_PartialWriteWhenNearlyFull(t *testing.T) {
	r, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	if n, _ := r.TryWrite(bytes.Repeat([]byte{0xAA}, 12)); n != 12 {
		t.Fatalf("prefill wrote %d", n)
	}
	// Only 4 bytes of room remain; the write must make partial progress.
	n, err := r.TryWrite([]byte{1, 2, 3, 4, 5, 6})
	if err != nil || n != 4 {
		t.Fatalf("TryWrite = (%d, %v), want (4, nil)", n, err)
	}
	// Full ring: zero progress, no error.
	n, err = r.TryWrite([]byte{9})
	if err != nil || n != 0 {
		t.Fatalf("TryWrite on full = (%d, %v), want (0, nil)", n, err)
	}
}

func TestRing_WrapAroundIntegrity(t *testing.T) {
	r, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	// Shift the positions so subsequent writes straddle the wrap point.
	pad := make([]byte, 10)
	r.TryWrite(pad)
	r.TryRead(pad)

	msg := []byte("0123456789ABCDEF"[:12])
	if n, _ := r.TryWrite(msg); n != len(msg) {
		t.Fatalf("wrapped write short: %d", n)
	}
	out := make([]byte, len(msg))
	if n, _ := r.TryRead(out); n != len(msg) {
		t.Fatalf("wrapped read short: %d", n)
	}
	if !bytes.Equal(out, msg) {
		t.Errorf("wrap corrupted data: got %q, want %q", out, msg)
	}
}

func TestRing_CloseSemantics(t *testing.T) {
	r, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	r.TryWrite([]byte("tail"))
	r.Close()
	if !r.Closed() {
		t.Error("Closed() must report true after Close")
	}

	if _, err := r.TryWrite([]byte("x")); !errors.Is(err, ErrClosed) {
		t.Errorf("write after close err = %v, want ErrClosed", err)
	}

	// Buffered bytes drain first, then EOF.
	out := make([]byte, 8)
	n, err := r.TryRead(out)
	if err != nil || n != 4 {
		t.Fatalf("drain read = (%d, %v), want (4, nil)", n, err)
	}
	if _, err := r.TryRead(out); !errors.Is(err, io.EOF) {
		t.Errorf("read after drain err = %v, want io.EOF", err)
	}

	r.Reset()
	if r.Closed() || r.Len() != 0 {
		t.Error("Reset must reopen and empty the ring")
	}
	if n, err := r.TryWrite([]byte("y")); err != nil || n != 1 {
		t.Errorf("write after Reset = (%d, %v)", n, err)
	}
}

// TestRing_ConcurrentStream pushes a deterministic byte pattern through
// the ring with independent producer and consumer goroutines and verifies
// nothing is lost, duplicated, or reordered.
func TestRing_ConcurrentStream(t *testing.T) {
	const total = 1 << 20
	r, err := New(256)
	if err != nil {
		t.Fatal(err)
	}

	go func() {
		chunk := make([]byte, 64)
		sent := 0
		for sent < total {
			n := len(chunk)
			if total-sent < n {
				n = total - sent
			}
			for i := 0; i < n; i++ {
				chunk[i] = byte(sent + i)
			}
			w, _ := r.TryWrite(chunk[:n])
			if w == 0 {
				runtime.Gosched()
				continue
			}
			sent += w
		}
		r.Close()
	}()

	buf := make([]byte, 96)
	received := 0
	for {
		n, err := r.TryRead(buf)
		for i := 0; i < n; i++ {
			if buf[i] != byte(received+i) {
				t.Fatalf("byte %d corrupted: got %#x, want %#x", received+i, buf[i], byte(received+i))
			}
		}
		received += n
		if err == io.EOF {
			break
		}
		if n == 0 {
			runtime.Gosched()
		}
	}
	if received != total {
		t.Errorf("received %d bytes, want %d", received, total)
	}
}
