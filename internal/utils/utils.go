package utils

import "reflect"

// IsNil - Returns true if v holds a nil of a nilable kind (pointer, interface, map, slice, func or channel).
// Values of non-nilable kinds are never nil regardless of being zero valued.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	switch r := reflect.ValueOf(v); r.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return r.IsNil()
	default:
		return false
	}
}
