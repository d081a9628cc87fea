// Package jsonutil provides nil-safe readers over decoded JSON maps. The
// provider's payloads are deeply optional, so every accessor takes a default
// and never panics on a missing or mistyped field.
package jsonutil

// Str returns the string at key, or def when absent or not a string.
func Str(m map[string]any, key, def string) string {
	if m == nil {
		return def
	}
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return def
}

// Num returns the number at key, or def. encoding/json decodes all JSON
// numbers as float64, but int is accepted for hand-built test fixtures.
func Num(m map[string]any, key string, def float64) float64 {
	if m == nil {
		return def
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return def
	}
}

// Int returns the number at key truncated to int, or def.
func Int(m map[string]any, key string, def int) int {
	if m == nil {
		return def
	}
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

// Bool returns the bool at key, or def.
func Bool(m map[string]any, key string, def bool) bool {
	if m == nil {
		return def
	}
	if b, ok := m[key].(bool); ok {
		return b
	}
	return def
}

// Map returns the object at key, or nil. A nil result is safe to pass back
// into any accessor in this package.
func Map(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	obj, _ := m[key].(map[string]any)
	return obj
}

// Slice returns the array at key, or nil.
func Slice(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	arr, _ := m[key].([]any)
	return arr
}

// FirstMap returns the first object element of arr, or nil.
func FirstMap(arr []any) map[string]any {
	for _, v := range arr {
		if obj, ok := v.(map[string]any); ok {
			return obj
		}
	}
	return nil
}

// Names flattens a list whose elements are either strings or objects with a
// "name" field, dropping anything else.
func Names(arr []any) []string {
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		switch e := v.(type) {
		case string:
			if e != "" {
				out = append(out, e)
			}
		case map[string]any:
			if name := Str(e, "name", ""); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

// NameOrStr reads key as either a plain string or an object with a "name"
// field. The provider is inconsistent about which shape it returns.
func NameOrStr(m map[string]any, key, def string) string {
	if obj := Map(m, key); obj != nil {
		return Str(obj, "name", def)
	}
	return Str(m, key, def)
}
