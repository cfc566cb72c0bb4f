package handlers

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuroyasouiti/unityforge/pkg/command"
	"github.com/kuroyasouiti/unityforge/pkg/convert"
	"github.com/kuroyasouiti/unityforge/pkg/editor"
	"github.com/kuroyasouiti/unityforge/pkg/resolve"
	"github.com/kuroyasouiti/unityforge/pkg/unity"
)

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	scene := editor.NewScene("Main")
	assets := editor.NewAssetDatabase()
	objects := resolve.NewGameObjectResolver(scene)
	assetRefs := resolve.NewAssetResolver(assets)

	registry := convert.NewRegistry(convert.WithObjectResolution(objects, assetRefs))
	registry.RegisterEnum(reflect.TypeOf(editor.LightType(0)), editor.LightTypeNames)
	registry.RegisterEnum(reflect.TypeOf(editor.PrimitiveType(0)), editor.PrimitiveTypeNames)

	return Deps{
		Scene:     scene,
		Assets:    assets,
		Objects:   objects,
		AssetRefs: assetRefs,
		Types:     resolve.NewTypeResolver(),
		Convert:   registry,
		Validator: command.NewValidator(registry),
	}
}

// run validates the payload through the handler's registered schema and
// executes the operation, the same two steps the dispatcher performs.
func run(t *testing.T, deps Deps, h CommandHandler, op string, p command.Payload) (any, error) {
	t.Helper()
	vr := deps.Validator.Validate(p, h.Category()+"."+op)
	if !vr.IsValid() {
		t.Fatalf("payload for %s.%s invalid: %v", h.Category(), op, vr.Errors)
	}
	return h.Handle(op, vr.Normalized)
}

func TestGameObjectHandler_Create(t *testing.T) {
	deps := newTestDeps(t)
	h := NewGameObjectHandler(deps)

	got, err := run(t, deps, h, "create", command.Payload{
		"name":     "Player",
		"position": map[string]any{"x": 1, "y": 2},
	})
	require.NoError(t, err)

	info := got.(map[string]any)
	assert.Equal(t, "Player", info["name"])
	assert.Equal(t, true, info["active"])

	obj := deps.Scene.FindByName("Player")
	require.NotNil(t, obj)
	assert.Equal(t, unity.Vector3{X: 1, Y: 2}, obj.Transform().LocalPosition)
	assert.True(t, deps.Scene.Dirty())
}

func TestGameObjectHandler_CreatePrimitiveUnderParent(t *testing.T) {
	deps := newTestDeps(t)
	h := NewGameObjectHandler(deps)

	_, err := run(t, deps, h, "create", command.Payload{"name": "Level"})
	require.NoError(t, err)

	_, err = run(t, deps, h, "create", command.Payload{
		"name":      "Ground",
		"parent":    "Level",
		"primitive": "plane",
	})
	require.NoError(t, err)

	ground := deps.Scene.FindByPath("Level/Ground")
	require.NotNil(t, ground)
	_, err = ground.Component(reflect.TypeOf(&editor.MeshRenderer{}))
	assert.NoError(t, err)
	col, err := ground.Component(reflect.TypeOf(&editor.BoxCollider{}))
	require.NoError(t, err)
	assert.Equal(t, unity.Vector3{X: 10, Y: 0, Z: 10}, col.(*editor.BoxCollider).Size)
}

func TestGameObjectHandler_CreateRequiresName(t *testing.T) {
	deps := newTestDeps(t)
	NewGameObjectHandler(deps)

	vr := deps.Validator.Validate(command.Payload{}, "gameobject.create")
	assert.False(t, vr.IsValid())
}

func TestGameObjectHandler_FindAndInspect(t *testing.T) {
	deps := newTestDeps(t)
	h := NewGameObjectHandler(deps)
	for _, name := range []string{"Enemy_1", "Enemy_2", "Player"} {
		_, err := run(t, deps, h, "create", command.Payload{"name": name})
		require.NoError(t, err)
	}

	got, err := run(t, deps, h, "find", command.Payload{"pattern": "Enemy_*"})
	require.NoError(t, err)
	found := got.(map[string]any)
	assert.Equal(t, 2, found["count"])

	got, err = run(t, deps, h, "inspect", command.Payload{"path": "Player"})
	require.NoError(t, err)
	assert.Equal(t, "Player", got.(map[string]any)["name"])

	assert.True(t, h.IsReadOnly("find"))
	assert.True(t, h.IsReadOnly("inspect"))
	assert.False(t, h.IsReadOnly("create"))
}

func TestGameObjectHandler_Lifecycle(t *testing.T) {
	deps := newTestDeps(t)
	h := NewGameObjectHandler(deps)
	_, err := run(t, deps, h, "create", command.Payload{"name": "Old"})
	require.NoError(t, err)

	_, err = run(t, deps, h, "rename", command.Payload{"path": "Old", "name": "New"})
	require.NoError(t, err)
	assert.Nil(t, deps.Scene.FindByName("Old"))
	require.NotNil(t, deps.Scene.FindByName("New"))

	got, err := run(t, deps, h, "set_active", command.Payload{"path": "New", "active": false})
	require.NoError(t, err)
	assert.Equal(t, false, got.(map[string]any)["active"])

	_, err = run(t, deps, h, "delete", command.Payload{"path": "New"})
	require.NoError(t, err)
	assert.Nil(t, deps.Scene.FindByName("New"))
}

func TestGameObjectHandler_SetParent(t *testing.T) {
	deps := newTestDeps(t)
	h := NewGameObjectHandler(deps)
	for _, name := range []string{"A", "B"} {
		_, err := run(t, deps, h, "create", command.Payload{"name": name})
		require.NoError(t, err)
	}

	_, err := run(t, deps, h, "set_parent", command.Payload{"path": "B", "parent": "A"})
	require.NoError(t, err)
	require.NotNil(t, deps.Scene.FindByPath("A/B"))

	// Omitting the parent detaches back to root level.
	_, err = run(t, deps, h, "set_parent", command.Payload{"path": "B"})
	require.NoError(t, err)
	assert.Nil(t, deps.Scene.FindByPath("A/B"))
	assert.Len(t, deps.Scene.Roots(), 2)
}

func TestGameObjectHandler_SetParentOnRootIsStable(t *testing.T) {
	deps := newTestDeps(t)
	h := NewGameObjectHandler(deps)
	_, err := run(t, deps, h, "create", command.Payload{"name": "A"})
	require.NoError(t, err)

	// Detaching an object that already sits at root level must not
	// register it a second time.
	_, err = run(t, deps, h, "set_parent", command.Payload{"path": "A"})
	require.NoError(t, err)

	sh := NewSceneHandler(deps)
	got, err := run(t, deps, sh, "list_objects", command.Payload{})
	require.NoError(t, err)
	assert.Equal(t, 1, got.(map[string]any)["count"])
	assert.Len(t, deps.Scene.Roots(), 1)

	_, err = run(t, deps, h, "delete", command.Payload{"path": "A"})
	require.NoError(t, err)
	assert.Nil(t, deps.Scene.FindByName("A"))
}

func TestGameObjectHandler_UnknownOperation(t *testing.T) {
	deps := newTestDeps(t)
	h := NewGameObjectHandler(deps)
	_, err := h.Handle("explode", command.Payload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "explode")
}

func TestComponentHandler_AddListRemove(t *testing.T) {
	deps := newTestDeps(t)
	goh := NewGameObjectHandler(deps)
	h := NewComponentHandler(deps)
	_, err := run(t, deps, goh, "create", command.Payload{"name": "Player"})
	require.NoError(t, err)

	got, err := run(t, deps, h, "add", command.Payload{"path": "Player", "type": "Light"})
	require.NoError(t, err)
	assert.Contains(t, got.(map[string]any)["components"], "UnityEngine.Light")

	got, err = run(t, deps, h, "list", command.Payload{"path": "Player"})
	require.NoError(t, err)
	assert.Len(t, got.(map[string]any)["components"], 2)

	_, err = run(t, deps, h, "remove", command.Payload{"path": "Player", "type": "UnityEngine.Light"})
	require.NoError(t, err)

	got, err = run(t, deps, h, "list", command.Payload{"path": "Player"})
	require.NoError(t, err)
	assert.Len(t, got.(map[string]any)["components"], 1)
}

func TestComponentHandler_SetProperty(t *testing.T) {
	deps := newTestDeps(t)
	goh := NewGameObjectHandler(deps)
	h := NewComponentHandler(deps)
	_, err := run(t, deps, goh, "create", command.Payload{"name": "Lamp"})
	require.NoError(t, err)
	_, err = run(t, deps, h, "add", command.Payload{"path": "Lamp", "type": "Light"})
	require.NoError(t, err)

	// Wire names are case-insensitive; the value coerces toward the
	// field's static type through the converter registry.
	_, err = run(t, deps, h, "set_property", command.Payload{
		"path": "Lamp", "type": "Light", "property": "intensity", "value": "2.5",
	})
	require.NoError(t, err)
	_, err = run(t, deps, h, "set_property", command.Payload{
		"path": "Lamp", "type": "Light", "property": "type", "value": "point",
	})
	require.NoError(t, err)
	_, err = run(t, deps, h, "set_property", command.Payload{
		"path": "Lamp", "type": "Light", "property": "color", "value": "red",
	})
	require.NoError(t, err)

	obj := deps.Scene.FindByName("Lamp")
	comp, err := obj.Component(reflect.TypeOf(&editor.Light{}))
	require.NoError(t, err)
	light := comp.(*editor.Light)
	assert.Equal(t, float32(2.5), light.Intensity)
	assert.Equal(t, editor.LightPoint, light.Type)
	assert.Equal(t, unity.Color{R: 1, A: 1}, light.Color)
}

func TestComponentHandler_SetPropertyUnknownField(t *testing.T) {
	deps := newTestDeps(t)
	goh := NewGameObjectHandler(deps)
	h := NewComponentHandler(deps)
	_, err := run(t, deps, goh, "create", command.Payload{"name": "Lamp"})
	require.NoError(t, err)
	_, err = run(t, deps, h, "add", command.Payload{"path": "Lamp", "type": "Light"})
	require.NoError(t, err)

	_, err = run(t, deps, h, "set_property", command.Payload{
		"path": "Lamp", "type": "Light", "property": "wattage", "value": 60,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wattage")
}

func TestComponentHandler_GetProperties(t *testing.T) {
	deps := newTestDeps(t)
	goh := NewGameObjectHandler(deps)
	h := NewComponentHandler(deps)
	_, err := run(t, deps, goh, "create", command.Payload{"name": "Lamp"})
	require.NoError(t, err)
	_, err = run(t, deps, h, "add", command.Payload{"path": "Lamp", "type": "Light"})
	require.NoError(t, err)

	got, err := run(t, deps, h, "get_properties", command.Payload{"path": "Lamp", "type": "Light"})
	require.NoError(t, err)
	_, ok := got.(*editor.Light)
	assert.True(t, ok, "get_properties returns the live component for the serializer")
}

func TestAssetHandler_CreateAndList(t *testing.T) {
	deps := newTestDeps(t)
	h := NewAssetHandler(deps)

	got, err := run(t, deps, h, "create_material", command.Payload{
		"path":  "Assets/Materials/Red.mat",
		"color": map[string]any{"r": 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "material", got.(map[string]any)["kind"])

	mat, err := deps.Assets.Load("Assets/Materials/Red.mat")
	require.NoError(t, err)
	assert.Equal(t, unity.Color{R: 1, A: 1}, mat.Object.(*editor.Material).Color)
	assert.Equal(t, "Standard", mat.Object.(*editor.Material).Shader)

	_, err = run(t, deps, h, "create_text", command.Payload{
		"path": "Assets/notes.txt", "text": "hello",
	})
	require.NoError(t, err)

	got, err = run(t, deps, h, "list", command.Payload{})
	require.NoError(t, err)
	listing := got.(map[string]any)
	assert.Equal(t, 3, listing["count"]) // folder + material + text
}

func TestAssetHandler_MaterialExtensionRule(t *testing.T) {
	deps := newTestDeps(t)
	NewAssetHandler(deps)

	vr := deps.Validator.Validate(command.Payload{"path": "Assets/Red.png"}, "asset.create_material")
	assert.False(t, vr.IsValid())
	require.Len(t, vr.Errors, 1)
	assert.Contains(t, vr.Errors[0], ".mat")
}

func TestAssetHandler_SandboxEnforced(t *testing.T) {
	deps := newTestDeps(t)
	h := NewAssetHandler(deps)

	_, err := run(t, deps, h, "create_folder", command.Payload{"path": "Assets/../secrets"})
	require.Error(t, err)

	_, err = run(t, deps, h, "delete", command.Payload{"path": "../etc"})
	require.Error(t, err)
}

func TestAssetHandler_MoveAndFind(t *testing.T) {
	deps := newTestDeps(t)
	h := NewAssetHandler(deps)
	_, err := run(t, deps, h, "create_text", command.Payload{"path": "Assets/readme.txt"})
	require.NoError(t, err)

	_, err = run(t, deps, h, "move", command.Payload{
		"from": "Assets/readme.txt", "to": "Assets/Docs/readme.txt",
	})
	require.NoError(t, err)

	got, err := run(t, deps, h, "find", command.Payload{"pattern": "readme"})
	require.NoError(t, err)
	found := got.(map[string]any)
	assert.Equal(t, 1, found["count"])

	got, err = run(t, deps, h, "info", command.Payload{"path": "Assets/Docs/readme.txt"})
	require.NoError(t, err)
	assert.NotEmpty(t, got.(map[string]any)["guid"])
}

func TestPrefabHandler_RoundTrip(t *testing.T) {
	deps := newTestDeps(t)
	goh := NewGameObjectHandler(deps)
	h := NewPrefabHandler(deps)

	_, err := run(t, deps, goh, "create", command.Payload{"name": "Tree"})
	require.NoError(t, err)
	_, err = run(t, deps, goh, "create", command.Payload{"name": "Leaves", "parent": "Tree"})
	require.NoError(t, err)

	_, err = run(t, deps, h, "create", command.Payload{
		"source": "Tree", "assetPath": "Assets/Prefabs/Tree.prefab",
	})
	require.NoError(t, err)

	// Mutating the scene original must not affect the snapshot.
	deps.Scene.Remove(deps.Scene.FindByName("Tree"))

	got, err := run(t, deps, h, "instantiate", command.Payload{
		"assetPath": "Assets/Prefabs/Tree.prefab",
		"name":      "Tree (Clone)",
		"position":  map[string]any{"x": 3},
	})
	require.NoError(t, err)
	info := got.(map[string]any)
	assert.Equal(t, "Tree (Clone)", info["name"])
	assert.Equal(t, 1, info["children"])

	clone := deps.Scene.FindByName("Tree (Clone)")
	require.NotNil(t, clone)
	assert.Equal(t, unity.Vector3{X: 3}, clone.Transform().LocalPosition)

	got, err = run(t, deps, h, "inspect", command.Payload{"assetPath": "Assets/Prefabs/Tree.prefab"})
	require.NoError(t, err)
	assert.Equal(t, "Tree", got.(map[string]any)["name"])
}

func TestPrefabHandler_ExtensionRule(t *testing.T) {
	deps := newTestDeps(t)
	NewPrefabHandler(deps)

	vr := deps.Validator.Validate(command.Payload{
		"source": "Tree", "assetPath": "Assets/Tree.asset",
	}, "prefab.create")
	assert.False(t, vr.IsValid())
}

func TestSceneHandler_HierarchyAndSave(t *testing.T) {
	deps := newTestDeps(t)
	goh := NewGameObjectHandler(deps)
	h := NewSceneHandler(deps)

	_, err := run(t, deps, goh, "create", command.Payload{"name": "Root"})
	require.NoError(t, err)
	_, err = run(t, deps, goh, "create", command.Payload{"name": "Child", "parent": "Root"})
	require.NoError(t, err)

	got, err := run(t, deps, h, "get_active", command.Payload{})
	require.NoError(t, err)
	active := got.(map[string]any)
	assert.Equal(t, "Main", active["name"])
	assert.Equal(t, true, active["dirty"])
	assert.Equal(t, 1, active["rootCount"])

	got, err = run(t, deps, h, "get_hierarchy", command.Payload{})
	require.NoError(t, err)
	roots := got.(map[string]any)["roots"].([]map[string]any)
	require.Len(t, roots, 1)
	assert.Equal(t, "Root", roots[0]["name"])
	assert.Len(t, roots[0]["children"], 1)

	got, err = run(t, deps, h, "get_hierarchy", command.Payload{"root": "Root/Child"})
	require.NoError(t, err)
	assert.Equal(t, "Child", got.(map[string]any)["name"])

	got, err = run(t, deps, h, "list_objects", command.Payload{})
	require.NoError(t, err)
	assert.Equal(t, 2, got.(map[string]any)["count"])

	got, err = run(t, deps, h, "save", command.Payload{})
	require.NoError(t, err)
	assert.Equal(t, true, got.(map[string]any)["saved"])
	assert.False(t, deps.Scene.Dirty())
}

func TestSceneHandler_CreateObject(t *testing.T) {
	deps := newTestDeps(t)
	h := NewSceneHandler(deps)

	got, err := run(t, deps, h, "create_object", command.Payload{"path": "Level"})
	require.NoError(t, err)
	assert.Equal(t, "Level", got.(map[string]any)["name"])

	got, err = run(t, deps, h, "create_object", command.Payload{"path": "Level/Props/Crate"})
	require.Error(t, err, "intermediate segments must already exist")

	_, err = run(t, deps, h, "create_object", command.Payload{"path": "Level/Props"})
	require.NoError(t, err)
	got, err = run(t, deps, h, "create_object", command.Payload{"path": "Level/Props/Crate"})
	require.NoError(t, err)
	assert.Equal(t, "Level/Props/Crate", got.(map[string]any)["path"])
	require.NotNil(t, deps.Scene.FindByPath("Level/Props/Crate"))
}

func TestHandlers_OperationsSorted(t *testing.T) {
	deps := newTestDeps(t)
	h := NewAssetHandler(deps)
	ops := h.Operations()
	assert.IsNonDecreasing(t, ops)
	assert.Contains(t, ops, "create_material")
}
