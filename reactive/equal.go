package reactive

import (
	"math"
	"reflect"
)

func hasChanged(value, oldValue any) bool {
	return !sameValue(value, oldValue)
}

// sameValue is identity equality that treats NaN as equal to itself and
// compares reference types (slices, maps) by address. Functions never
// compare equal.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if isNaN(a) && isNaN(b) {
		return true
	}
	return strictEquals(a, b)
}

// strictEquals is sameValue without the NaN exception.
func strictEquals(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return safeEqual(a, b)
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	}
	return false
}

// comparable struct types can still hold non-comparable dynamic values
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

func isNaN(v any) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	}
	return false
}

// hashable reports whether v can be used as a Go map key. A comparable type
// is not enough: interface fields of structs and arrays may hold slices.
func hashable(v any) bool {
	if v == nil {
		return true
	}
	return hashableValue(reflect.ValueOf(v))
}

func hashableValue(rv reflect.Value) bool {
	if !rv.Type().Comparable() {
		return false
	}
	switch rv.Kind() {
	case reflect.Interface:
		return rv.IsNil() || hashableValue(rv.Elem())
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if !hashableValue(rv.Field(i)) {
				return false
			}
		}
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !hashableValue(rv.Index(i)) {
				return false
			}
		}
	}
	return true
}
