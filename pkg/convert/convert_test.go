package convert

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuroyasouiti/unityforge/pkg/editor"
	"github.com/kuroyasouiti/unityforge/pkg/unity"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	reg.RegisterEnum(reflect.TypeOf(editor.LightType(0)), editor.LightTypeNames)
	reg.RegisterEnum(reflect.TypeOf(editor.PrimitiveType(0)), editor.PrimitiveTypeNames)
	return reg
}

func TestRegistry_PrimitiveCoercion(t *testing.T) {
	reg := newTestRegistry(t)

	cases := []struct {
		name   string
		value  any
		target reflect.Type
		want   any
	}{
		{"string to int", "42", reflect.TypeOf(int(0)), 42},
		{"float to int when whole", 3.0, reflect.TypeOf(int(0)), 3},
		{"int to float", 7, reflect.TypeOf(float64(0)), 7.0},
		{"string to float", "1.5", reflect.TypeOf(float64(0)), 1.5},
		{"string to bool", "true", reflect.TypeOf(false), true},
		{"number to string", 12, reflect.TypeOf(""), "12"},
		{"bool passthrough", true, reflect.TypeOf(false), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reg.Convert(tc.value, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRegistry_PrimitiveRejectsFractionalInt(t *testing.T) {
	reg := newTestRegistry(t)
	_, err := reg.Convert(3.5, reflect.TypeOf(int(0)))
	require.Error(t, err)
	var convErr *ConversionError
	assert.ErrorAs(t, err, &convErr)
}

func TestRegistry_NilBecomesZeroValue(t *testing.T) {
	reg := newTestRegistry(t)

	got, err := reg.Convert(nil, reflect.TypeOf(int(0)))
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = reg.Convert(nil, reflect.TypeOf(unity.Vector3{}))
	require.NoError(t, err)
	assert.Equal(t, unity.Vector3{}, got)
}

func TestRegistry_NilCollectionBecomesEmpty(t *testing.T) {
	reg := newTestRegistry(t)
	got, err := reg.Convert(nil, reflect.TypeOf([]int{}))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.([]int))
}

func TestRegistry_PrioritySelection(t *testing.T) {
	reg := newTestRegistry(t)

	// An enum target must be claimed by the enum converter even though
	// the struct and primitive converters would also accept an int kind.
	c := reg.selectFor(reflect.TypeOf(editor.LightType(0)))
	require.NotNil(t, c)
	assert.Equal(t, prioEnum, c.Priority())

	// A Unity value struct outranks the generic struct converter.
	c = reg.selectFor(reflect.TypeOf(unity.Vector3{}))
	require.NotNil(t, c)
	assert.Equal(t, prioUnityStruct, c.Priority())

	c = reg.selectFor(reflect.TypeOf([]unity.Vector3{}))
	require.NotNil(t, c)
	assert.Equal(t, prioSlice, c.Priority())
}

func TestRegistry_RegistrationOrderBreaksTies(t *testing.T) {
	reg := NewRegistry()
	first := &stubConverter{priority: 50, id: "first"}
	second := &stubConverter{priority: 50, id: "second"}
	reg.Register(first)
	reg.Register(second)

	c := reg.selectFor(reflect.TypeOf(stubTarget{}))
	require.NotNil(t, c)
	assert.Equal(t, "first", c.(*stubConverter).id)
}

type stubTarget struct{}

type stubConverter struct {
	priority int
	id       string
}

func (c *stubConverter) Priority() int { return c.priority }
func (c *stubConverter) CanConvert(target reflect.Type) bool {
	return target == reflect.TypeOf(stubTarget{})
}
func (c *stubConverter) Convert(value any, target reflect.Type) (any, error) {
	return stubTarget{}, nil
}

func TestEnumConverter_Names(t *testing.T) {
	reg := newTestRegistry(t)
	target := reflect.TypeOf(editor.LightType(0))

	got, err := reg.Convert("directional", target)
	require.NoError(t, err)
	assert.Equal(t, editor.LightDirectional, got)

	// Case-insensitive.
	got, err = reg.Convert("Directional", target)
	require.NoError(t, err)
	assert.Equal(t, editor.LightDirectional, got)
}

func TestEnumConverter_Ordinal(t *testing.T) {
	reg := newTestRegistry(t)
	target := reflect.TypeOf(editor.LightType(0))

	got, err := reg.Convert(int(editor.LightPoint), target)
	require.NoError(t, err)
	assert.Equal(t, editor.LightPoint, got)

	// Numeric values are accepted without range validation.
	got, err = reg.Convert(99, target)
	require.NoError(t, err)
	assert.Equal(t, editor.LightType(99), got)
}

func TestEnumConverter_UnknownNameListsMembers(t *testing.T) {
	reg := newTestRegistry(t)
	_, err := reg.Convert("sideways", reflect.TypeOf(editor.LightType(0)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
	assert.Contains(t, err.Error(), "directional")
}

func TestUnityStruct_FromMapping(t *testing.T) {
	reg := newTestRegistry(t)

	got, err := reg.Convert(map[string]any{"x": 1, "y": 2.5, "z": 3}, reflect.TypeOf(unity.Vector3{}))
	require.NoError(t, err)
	assert.Equal(t, unity.Vector3{X: 1, Y: 2.5, Z: 3}, got)
}

func TestUnityStruct_PartialMappingKeepsDefaults(t *testing.T) {
	reg := newTestRegistry(t)

	// Omitted color channels keep the type default: opaque alpha.
	got, err := reg.Convert(map[string]any{"r": 1.0}, reflect.TypeOf(unity.Color{}))
	require.NoError(t, err)
	assert.Equal(t, unity.Color{R: 1, A: 1}, got)

	got, err = reg.Convert(map[string]any{}, reflect.TypeOf(unity.Quaternion{}))
	require.NoError(t, err)
	assert.Equal(t, unity.Quaternion{W: 1}, got)
}

func TestUnityStruct_NamedConstant(t *testing.T) {
	reg := newTestRegistry(t)

	got, err := reg.Convert("up", reflect.TypeOf(unity.Vector3{}))
	require.NoError(t, err)
	assert.Equal(t, unity.Vector3{Y: 1}, got)

	got, err = reg.Convert("red", reflect.TypeOf(unity.Color{}))
	require.NoError(t, err)
	assert.Equal(t, unity.Color{R: 1, A: 1}, got)
}

func TestUnityStruct_UnknownConstant(t *testing.T) {
	reg := newTestRegistry(t)
	_, err := reg.Convert("diagonal", reflect.TypeOf(unity.Vector3{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "diagonal")
	assert.Contains(t, err.Error(), "up")
}

func TestUnityStruct_TypedPassthrough(t *testing.T) {
	reg := newTestRegistry(t)
	v := unity.Vector3{X: 1, Y: 2, Z: 3}
	got, err := reg.Convert(v, reflect.TypeOf(unity.Vector3{}))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestSliceConverter_ElementConversion(t *testing.T) {
	reg := newTestRegistry(t)

	got, err := reg.Convert([]any{"1", 2, 3.0}, reflect.TypeOf([]int{}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSliceConverter_NestedStructElements(t *testing.T) {
	reg := newTestRegistry(t)

	got, err := reg.Convert(
		[]any{map[string]any{"x": 1}, "up"},
		reflect.TypeOf([]unity.Vector3{}),
	)
	require.NoError(t, err)
	assert.Equal(t, []unity.Vector3{{X: 1}, {Y: 1}}, got)
}

func TestSliceConverter_ScalarWrapsIntoSingleton(t *testing.T) {
	reg := newTestRegistry(t)
	got, err := reg.Convert(5, reflect.TypeOf([]int{}))
	require.NoError(t, err)
	assert.Equal(t, []int{5}, got)
}

func TestSliceConverter_ArrayFillsUpToLength(t *testing.T) {
	reg := newTestRegistry(t)

	got, err := reg.Convert([]any{1, 2}, reflect.TypeOf([3]int{}))
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, 2, 0}, got)

	// Extra elements beyond the fixed length are dropped.
	got, err = reg.Convert([]any{1, 2, 3, 4}, reflect.TypeOf([2]int{}))
	require.NoError(t, err)
	assert.Equal(t, [2]int{1, 2}, got)
}

func TestSliceConverter_ElementErrorPropagates(t *testing.T) {
	reg := newTestRegistry(t)
	_, err := reg.Convert([]any{1, "not a number"}, reflect.TypeOf([]int{}))
	require.Error(t, err)
}

type spawnRequest struct {
	Name     string        `mapstructure:"name"`
	Count    int           `mapstructure:"count"`
	Position unity.Vector3 `mapstructure:"position"`
	Kind     editor.LightType
}

func TestStructConverter_NestedRegistryTypes(t *testing.T) {
	reg := newTestRegistry(t)

	got, err := reg.Convert(map[string]any{
		"name":     "Spawner",
		"count":    "4",
		"position": map[string]any{"x": 1, "z": 2},
		"Kind":     "spot",
	}, reflect.TypeOf(spawnRequest{}))
	require.NoError(t, err)

	req := got.(spawnRequest)
	assert.Equal(t, "Spawner", req.Name)
	assert.Equal(t, 4, req.Count)
	assert.Equal(t, unity.Vector3{X: 1, Z: 2}, req.Position)
	assert.Equal(t, editor.LightSpot, req.Kind)
}

func TestStructConverter_PartialFillOnFieldError(t *testing.T) {
	reg := newTestRegistry(t)

	// The malformed count must not discard the successfully decoded
	// name: the partial result is kept.
	got, err := reg.Convert(map[string]any{
		"name":  "Keeper",
		"count": map[string]any{"nonsense": true},
	}, reflect.TypeOf(spawnRequest{}))
	require.NoError(t, err)

	req := got.(spawnRequest)
	assert.Equal(t, "Keeper", req.Name)
	assert.Zero(t, req.Count)
}

func TestStructConverter_PointerTarget(t *testing.T) {
	reg := newTestRegistry(t)

	got, err := reg.Convert(map[string]any{"name": "P"}, reflect.TypeOf(&spawnRequest{}))
	require.NoError(t, err)
	req, ok := got.(*spawnRequest)
	require.True(t, ok)
	assert.Equal(t, "P", req.Name)
}

func TestStructConverter_RejectsNonMapping(t *testing.T) {
	reg := newTestRegistry(t)
	_, err := reg.Convert("not a map", reflect.TypeOf(spawnRequest{}))
	require.Error(t, err)
}
