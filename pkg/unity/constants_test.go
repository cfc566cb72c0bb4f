package unity

import (
	"reflect"
	"testing"
)

func TestConstant_DocumentedValues(t *testing.T) {
	cases := []struct {
		typ  reflect.Type
		name string
		want any
	}{
		{reflect.TypeOf(Vector3{}), "zero", Vector3{}},
		{reflect.TypeOf(Vector3{}), "up", Vector3{Y: 1}},
		{reflect.TypeOf(Vector3{}), "forward", Vector3{Z: 1}},
		{reflect.TypeOf(Vector2{}), "one", Vector2{X: 1, Y: 1}},
		{reflect.TypeOf(Quaternion{}), "identity", Quaternion{W: 1}},
		{reflect.TypeOf(Color{}), "red", Color{R: 1, A: 1}},
		{reflect.TypeOf(Color{}), "clear", Color{}},
	}
	for _, tc := range cases {
		got, ok := Constant(tc.typ, tc.name)
		if !ok {
			t.Errorf("Constant(%s, %q) not found", tc.typ, tc.name)
			continue
		}
		if got != tc.want {
			t.Errorf("Constant(%s, %q) = %v, want %v", tc.typ, tc.name, got, tc.want)
		}
	}
}

func TestConstant_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"Identity", "IDENTITY", "identity"} {
		got, ok := Constant(reflect.TypeOf(Quaternion{}), name)
		if !ok || got != (Quaternion{W: 1}) {
			t.Errorf("Constant(Quaternion, %q) = %v, %v", name, got, ok)
		}
	}
}

func TestConstant_UnknownName(t *testing.T) {
	if _, ok := Constant(reflect.TypeOf(Vector3{}), "sideways"); ok {
		t.Error("Constant should not resolve an unregistered symbol")
	}
}

func TestConstants_Enumerable(t *testing.T) {
	names := Constants(reflect.TypeOf(Vector3{}))
	if len(names) == 0 {
		t.Fatal("Vector3 should enumerate constants")
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"zero", "one", "up", "down", "left", "right", "forward", "back"} {
		if !seen[want] {
			t.Errorf("Vector3 constants missing %q", want)
		}
	}
}

func TestDefault_AlphaAndW(t *testing.T) {
	if got := Default(reflect.TypeOf(Color{})); got != (Color{A: 1}) {
		t.Errorf("Color default = %v, want alpha 1", got)
	}
	if got := Default(reflect.TypeOf(Quaternion{})); got != (Quaternion{W: 1}) {
		t.Errorf("Quaternion default = %v, want W 1", got)
	}
	if got := Default(reflect.TypeOf(Vector3{})); got != (Vector3{}) {
		t.Errorf("Vector3 default = %v, want zero", got)
	}
}
