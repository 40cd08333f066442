package fcore

import (
	"reflect"
)

// IsNil reports whether v is the absent sentinel of its type: untyped nil or
// a nil pointer, map, channel, function or interface. Nil slices are valid
// empty values and are not reported.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Equal compares two values of the same static type. Types with an
// Equal(T) bool method use it, comparable dynamic types use ==, everything
// else falls back to reflect.DeepEqual.
func Equal[T any](a, b T) bool {
	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}

	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}

	ta, tb := reflect.TypeOf(av), reflect.TypeOf(bv)
	if ta != tb {
		return false
	}
	if ta.Comparable() && comparableValue(reflect.ValueOf(av)) {
		return av == bv
	}
	return reflect.DeepEqual(av, bv)
}

// comparableValue guards against == panicking on structs or arrays that hold
// an incomparable dynamic value behind an interface field.
func comparableValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		return v.Elem().Type().Comparable() && comparableValue(v.Elem())
	case reflect.Struct:
		for i := range v.NumField() {
			if !comparableValue(v.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := range v.Len() {
			if !comparableValue(v.Index(i)) {
				return false
			}
		}
		return true
	default:
		return v.Type().Comparable()
	}
}
