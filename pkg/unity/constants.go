package unity

import (
	"reflect"
	"sort"
	"strings"
)

// constantTables maps each value-struct type to its symbolic constant
// vocabulary. Lookups are case-insensitive; the tables store lowercase
// keys only.
var constantTables = map[reflect.Type]map[string]any{
	reflect.TypeOf(Vector2{}): {
		"zero":  Vector2{},
		"one":   Vector2{X: 1, Y: 1},
		"up":    Vector2{Y: 1},
		"down":  Vector2{Y: -1},
		"left":  Vector2{X: -1},
		"right": Vector2{X: 1},
	},
	reflect.TypeOf(Vector3{}): {
		"zero":    Vector3{},
		"one":     Vector3{X: 1, Y: 1, Z: 1},
		"up":      Vector3{Y: 1},
		"down":    Vector3{Y: -1},
		"left":    Vector3{X: -1},
		"right":   Vector3{X: 1},
		"forward": Vector3{Z: 1},
		"back":    Vector3{Z: -1},
	},
	reflect.TypeOf(Vector4{}): {
		"zero": Vector4{},
		"one":  Vector4{X: 1, Y: 1, Z: 1, W: 1},
	},
	reflect.TypeOf(Quaternion{}): {
		"identity": Quaternion{W: 1},
	},
	reflect.TypeOf(Color{}): {
		"red":     Color{R: 1, A: 1},
		"green":   Color{G: 1, A: 1},
		"blue":    Color{B: 1, A: 1},
		"white":   Color{R: 1, G: 1, B: 1, A: 1},
		"black":   Color{A: 1},
		"yellow":  Color{R: 1, G: 0.92156863, A: 1},
		"cyan":    Color{G: 1, B: 1, A: 1},
		"magenta": Color{R: 1, B: 1, A: 1},
		"gray":    Color{R: 0.5, G: 0.5, B: 0.5, A: 1},
		"grey":    Color{R: 0.5, G: 0.5, B: 0.5, A: 1},
		"clear":   Color{},
	},
	reflect.TypeOf(Rect{}):   {"zero": Rect{}},
	reflect.TypeOf(Bounds{}): {"zero": Bounds{}},
}

// defaults holds the starting value used when converting a field-named
// mapping: absent fields keep these values. Alpha and W default to 1 so
// that a partial color or rotation stays usable.
var defaults = map[reflect.Type]any{
	reflect.TypeOf(Color{}):      Color{A: 1},
	reflect.TypeOf(Quaternion{}): Quaternion{W: 1},
}

// IsValueType reports whether t is one of the Unity value structs with
// wire-format support.
func IsValueType(t reflect.Type) bool {
	_, ok := constantTables[t]
	return ok
}

// Constant resolves a symbolic constant name for type t, ignoring case.
func Constant(t reflect.Type, name string) (any, bool) {
	table, ok := constantTables[t]
	if !ok {
		return nil, false
	}
	v, ok := table[strings.ToLower(name)]
	return v, ok
}

// Constants enumerates the symbolic constant names registered for t,
// sorted for stable output.
func Constants(t reflect.Type) []string {
	table, ok := constantTables[t]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the starting value for mapping conversion of t.
func Default(t reflect.Type) any {
	if v, ok := defaults[t]; ok {
		return v
	}
	return reflect.Zero(t).Interface()
}
