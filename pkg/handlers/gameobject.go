package handlers

import (
	"reflect"

	"github.com/kuroyasouiti/unityforge/pkg/command"
	"github.com/kuroyasouiti/unityforge/pkg/editor"
	"github.com/kuroyasouiti/unityforge/pkg/resolve"
	"github.com/kuroyasouiti/unityforge/pkg/unity"
)

// GameObjectHandler serves the "gameobject" category: object lifecycle
// and lookup in the active scene.
type GameObjectHandler struct {
	*base
}

// NewGameObjectHandler registers the gameobject operations and their
// schemas.
func NewGameObjectHandler(deps Deps) *GameObjectHandler {
	h := &GameObjectHandler{base: newBase("gameobject", deps)}

	h.register("create", h.create, &command.Schema{
		Required: []string{"name"},
		Types: map[string]reflect.Type{
			"name":      stringType,
			"parent":    stringType,
			"primitive": reflect.TypeOf(editor.PrimitiveType(0)),
			"position":  reflect.TypeOf(unity.Vector3{}),
			"active":    reflect.TypeOf(true),
		},
		Defaults: map[string]any{"active": true},
	})
	h.registerReadOnly("find", h.find, &command.Schema{
		Required: []string{"pattern"},
		Types: map[string]reflect.Type{
			"pattern":    stringType,
			"useRegex":   reflect.TypeOf(true),
			"maxResults": reflect.TypeOf(0),
		},
		Defaults: map[string]any{"useRegex": false, "maxResults": resolve.DefaultMaxResults},
	})
	h.registerReadOnly("inspect", h.inspect, &command.Schema{
		Required: []string{"path"},
		Types:    map[string]reflect.Type{"path": stringType},
	})
	h.register("delete", h.delete, &command.Schema{
		Required: []string{"path"},
		Types:    map[string]reflect.Type{"path": stringType},
	})
	h.register("rename", h.rename, &command.Schema{
		Required: []string{"path", "name"},
		Types:    map[string]reflect.Type{"path": stringType, "name": stringType},
	})
	h.register("set_active", h.setActive, &command.Schema{
		Required: []string{"path"},
		Types:    map[string]reflect.Type{"path": stringType, "active": reflect.TypeOf(true)},
		Defaults: map[string]any{"active": true},
	})
	h.register("set_parent", h.setParent, &command.Schema{
		Required: []string{"path"},
		Types:    map[string]reflect.Type{"path": stringType, "parent": stringType},
	})
	return h
}

func (h *GameObjectHandler) create(p command.Payload) (any, error) {
	obj := editor.NewGameObject(p.GetString("name", ""))
	obj.SetActive(p.GetBool("active", true))

	if p.Has("primitive") {
		prim, _ := p["primitive"].(editor.PrimitiveType)
		if err := attachPrimitive(obj, prim); err != nil {
			return nil, err
		}
	}
	if pos, ok := p["position"].(unity.Vector3); ok {
		obj.Transform().LocalPosition = pos
	}

	if p.Has("parent") {
		parent, err := h.deps.Objects.Resolve(p.GetString("parent", ""))
		if err != nil {
			return nil, err
		}
		if err := obj.SetParent(parent); err != nil {
			return nil, err
		}
		h.deps.Scene.MarkDirty()
	} else {
		h.deps.Scene.AddRoot(obj)
	}
	return objectInfo(obj), nil
}

// attachPrimitive mirrors GameObject.CreatePrimitive: a renderer plus
// the collider shape of the primitive.
func attachPrimitive(obj *editor.GameObject, prim editor.PrimitiveType) error {
	if err := obj.AddComponent(&editor.MeshRenderer{Enabled: true, CastShadows: true, ReceiveShadows: true}); err != nil {
		return err
	}
	size := unity.Vector3{X: 1, Y: 1, Z: 1}
	if prim == editor.PrimitivePlane {
		size = unity.Vector3{X: 10, Y: 0, Z: 10}
	}
	return obj.AddComponent(&editor.BoxCollider{Size: size})
}

func (h *GameObjectHandler) find(p command.Payload) (any, error) {
	matches, err := h.deps.Objects.FindByPattern(
		p.GetString("pattern", ""),
		p.GetBool("useRegex", false),
		p.GetInt("maxResults", resolve.DefaultMaxResults),
	)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, m.Path())
	}
	return map[string]any{"count": len(paths), "paths": paths}, nil
}

func (h *GameObjectHandler) inspect(p command.Payload) (any, error) {
	obj, err := h.deps.Objects.Resolve(p.GetString("path", ""))
	if err != nil {
		return nil, err
	}
	return objectInfo(obj), nil
}

func (h *GameObjectHandler) delete(p command.Payload) (any, error) {
	obj, err := h.deps.Objects.Resolve(p.GetString("path", ""))
	if err != nil {
		return nil, err
	}
	h.deps.Scene.Remove(obj)
	return map[string]any{"deleted": obj.Path()}, nil
}

func (h *GameObjectHandler) rename(p command.Payload) (any, error) {
	obj, err := h.deps.Objects.Resolve(p.GetString("path", ""))
	if err != nil {
		return nil, err
	}
	old := obj.Name
	obj.Name = p.GetString("name", old)
	h.deps.Scene.MarkDirty()
	return map[string]any{"from": old, "to": obj.Name, "path": obj.Path()}, nil
}

func (h *GameObjectHandler) setActive(p command.Payload) (any, error) {
	obj, err := h.deps.Objects.Resolve(p.GetString("path", ""))
	if err != nil {
		return nil, err
	}
	obj.SetActive(p.GetBool("active", true))
	h.deps.Scene.MarkDirty()
	return map[string]any{"path": obj.Path(), "active": obj.Active()}, nil
}

func (h *GameObjectHandler) setParent(p command.Payload) (any, error) {
	obj, err := h.deps.Objects.Resolve(p.GetString("path", ""))
	if err != nil {
		return nil, err
	}
	if !p.Has("parent") {
		h.deps.Scene.AddRoot(obj)
		return objectInfo(obj), nil
	}
	parent, err := h.deps.Objects.Resolve(p.GetString("parent", ""))
	if err != nil {
		return nil, err
	}
	if err := obj.SetParent(parent); err != nil {
		return nil, err
	}
	h.deps.Scene.MarkDirty()
	return objectInfo(obj), nil
}

// objectInfo is the standard wire summary of a scene object.
func objectInfo(g *editor.GameObject) map[string]any {
	comps := make([]string, 0, len(g.Components()))
	for _, c := range g.Components() {
		name := reflect.TypeOf(c).Elem().Name()
		if full, ok := editor.NameOf(reflect.TypeOf(c)); ok {
			name = full
		}
		comps = append(comps, name)
	}
	return map[string]any{
		"name":       g.Name,
		"path":       g.Path(),
		"active":     g.Active(),
		"children":   len(g.Children()),
		"components": comps,
	}
}
