package gameapi

import (
	"fmt"
	"reflect"
)

// Normalize converts a state value to its canonical in-memory form:
// all numbers become int, all slices become []any and all maps become
// map[string]any, recursively. JSON decoding and engine construction
// both funnel through this so exact comparison is representation
// independent.
func Normalize(v any) any {
	switch v := v.(type) {
	case nil:
		return nil
	case bool, string, int:
		return v
	case float64:
		return int(v)
	case float32:
		return int(v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint())
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = Normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		for _, k := range rv.MapKeys() {
			out[fmt.Sprint(k.Interface())] = Normalize(rv.MapIndex(k).Interface())
		}
		return out
	default:
		return v
	}
}

// NormalizeState normalizes every value of a decoded key-value state
func NormalizeState(state map[string]any) map[string]any {
	out := make(map[string]any, len(state))
	for k, v := range state {
		out[k] = Normalize(v)
	}
	return out
}
