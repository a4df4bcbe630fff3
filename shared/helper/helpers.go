package helper

import (
	"fmt"
	"reflect"
)

// TypedValueOf safely asserts v to the expected type T.
// A nil v, or a typed nil of a nillable kind, never satisfies T.
func TypedValueOf[T any](v any) (T, bool) {
	var zero T
	if IsNil(v) {
		return zero, false
	}
	val, ok := v.(T)
	if !ok {
		return zero, false
	}
	return val, true
}

// MustTypedValueOf is the panic-on-failure variant of TypedValueOf.
// Use when a mismatch can only be a programming error.
func MustTypedValueOf[T any](v any) T {
	val, ok := TypedValueOf[T](v)
	if !ok {
		panic(fmt.Sprintf("unexpected type: %T is not %v", v, reflect.TypeFor[T]()))
	}
	return val
}

// IsNil reports whether v is nil, including typed nils stored in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// AddressOf returns the address v refers to, or 0 when v has no address
// of its own: nil, scalars, structs and funcs. Zero-size pointees and empty
// slices also give 0, as the runtime may place them all at one address.
func AddressOf(v any) uintptr {
	if IsNil(v) {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.Type().Elem().Size() == 0 {
			return 0
		}
		return rv.Pointer()
	case reflect.Slice:
		if rv.Cap() == 0 || rv.Type().Elem().Size() == 0 {
			return 0
		}
		return rv.Pointer()
	case reflect.UnsafePointer, reflect.Map, reflect.Chan:
		return rv.Pointer()
	default:
		return 0
	}
}
