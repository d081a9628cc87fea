package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStr(t *testing.T) {
	m := map[string]any{"name": "Rohini", "empty": "", "num": 4.0}

	assert.Equal(t, "Rohini", Str(m, "name", "N/A"))
	assert.Equal(t, "N/A", Str(m, "empty", "N/A"))
	assert.Equal(t, "N/A", Str(m, "num", "N/A"))
	assert.Equal(t, "N/A", Str(m, "missing", "N/A"))
	assert.Equal(t, "N/A", Str(nil, "name", "N/A"))
}

func TestNumAndInt(t *testing.T) {
	m := map[string]any{"f": 3.5, "i": 7, "s": "3"}

	assert.Equal(t, 3.5, Num(m, "f", 0))
	assert.Equal(t, 7.0, Num(m, "i", 0))
	assert.Equal(t, 0.0, Num(m, "s", 0))
	assert.Equal(t, 0.0, Num(nil, "f", 0))

	assert.Equal(t, 3, Int(m, "f", 0))
	assert.Equal(t, 7, Int(m, "i", 0))
	assert.Equal(t, -1, Int(m, "s", -1))
}

func TestBool(t *testing.T) {
	m := map[string]any{"yes": true, "s": "true"}

	assert.True(t, Bool(m, "yes", false))
	assert.False(t, Bool(m, "s", false))
	assert.True(t, Bool(nil, "yes", true))
}

func TestMapAndSlice(t *testing.T) {
	m := map[string]any{
		"obj": map[string]any{"name": "x"},
		"arr": []any{1.0, 2.0},
		"str": "nope",
	}

	assert.Equal(t, "x", Str(Map(m, "obj"), "name", ""))
	assert.Nil(t, Map(m, "str"))
	assert.Nil(t, Map(nil, "obj"))

	assert.Len(t, Slice(m, "arr"), 2)
	assert.Nil(t, Slice(m, "str"))

	// A nil Map result chains safely into every accessor.
	assert.Equal(t, "N/A", Str(Map(m, "missing"), "name", "N/A"))
}

func TestFirstMap(t *testing.T) {
	arr := []any{"skip me", map[string]any{"name": "first"}, map[string]any{"name": "second"}}

	assert.Equal(t, "first", Str(FirstMap(arr), "name", ""))
	assert.Nil(t, FirstMap([]any{"a", 1.0}))
	assert.Nil(t, FirstMap(nil))
}

func TestNames(t *testing.T) {
	arr := []any{
		"Diwali",
		map[string]any{"name": "Navaratri"},
		map[string]any{"title": "no name field"},
		"",
		42.0,
	}

	assert.Equal(t, []string{"Diwali", "Navaratri"}, Names(arr))

	// Always a non-nil slice, even for empty input.
	assert.NotNil(t, Names(nil))
	assert.Empty(t, Names(nil))
}

func TestNameOrStr(t *testing.T) {
	asObj := map[string]any{"ritu": map[string]any{"name": "Sharad"}}
	asStr := map[string]any{"ritu": "Sharad"}

	assert.Equal(t, "Sharad", NameOrStr(asObj, "ritu", "N/A"))
	assert.Equal(t, "Sharad", NameOrStr(asStr, "ritu", "N/A"))
	assert.Equal(t, "N/A", NameOrStr(map[string]any{}, "ritu", "N/A"))
	assert.Equal(t, "N/A", NameOrStr(nil, "ritu", "N/A"))
}
