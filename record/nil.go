package record

import "reflect"

// IsNil reports whether v is nil or a typed nil pointer, map, slice,
// func, chan or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Plain converts nested records back to plain maps, slices element-wise.
// Other values are returned unchanged.
func Plain(v any) any {
	return plainValue(v)
}
