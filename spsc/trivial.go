// File: spsc/trivial.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Construction-time element type check. The ring duplicates values by
// plain assignment, which is a raw byte copy for types with no internal
// references; anything that shares or owns external state would alias
// between producer and consumer and is rejected up front.

package spsc

import (
	"reflect"

	"github.com/momentics/hioload-ring/api"
)

// checkTriviallyCopyable rejects element types whose assignment is not a
// full byte-for-byte duplication of the value.
func checkTriviallyCopyable[T any]() error {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if bad := firstNonTrivial(t); bad != nil {
		return api.NewError(api.ErrCodeBadElementType,
			"ring: element type is not trivially copyable").
			WithContext("type", t.String()).
			WithContext("offending", bad.String())
	}
	return nil
}

// firstNonTrivial walks the structure of t and returns the first nested
// type that carries a reference, or nil if t is byte-copyable throughout.
func firstNonTrivial(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return nil
	case reflect.Array:
		return firstNonTrivial(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if bad := firstNonTrivial(t.Field(i).Type); bad != nil {
				return bad
			}
		}
		return nil
	default:
		// Pointer, slice, map, string, chan, func, interface, unsafe.Pointer.
		return t
	}
}
