package handlers

import (
	"fmt"
	"path"
	"reflect"
	"strings"

	"github.com/kuroyasouiti/unityforge/pkg/command"
	"github.com/kuroyasouiti/unityforge/pkg/editor"
	"github.com/kuroyasouiti/unityforge/pkg/resolve"
	"github.com/kuroyasouiti/unityforge/pkg/unity"
)

// PrefabHandler serves the "prefab" category: snapshotting scene
// subtrees into assets and stamping them back into the scene.
type PrefabHandler struct {
	*base
}

// NewPrefabHandler registers the prefab operations and their schemas.
func NewPrefabHandler(deps Deps) *PrefabHandler {
	h := &PrefabHandler{base: newBase("prefab", deps)}

	h.register("create", h.create, &command.Schema{
		Required: []string{"source", "assetPath"},
		Types:    map[string]reflect.Type{"source": stringType, "assetPath": stringType},
		Custom: []command.CustomValidator{
			func(p command.Payload) error {
				if path.Ext(p.GetString("assetPath", "")) != ".prefab" {
					return fmt.Errorf("prefab asset path must end in .prefab")
				}
				return nil
			},
		},
	})
	h.register("instantiate", h.instantiate, &command.Schema{
		Required: []string{"assetPath"},
		Types: map[string]reflect.Type{
			"assetPath": stringType,
			"parent":    stringType,
			"position":  reflect.TypeOf(unity.Vector3{}),
			"name":      stringType,
		},
	})
	h.registerReadOnly("inspect", h.inspect, &command.Schema{
		Required: []string{"assetPath"},
		Types:    map[string]reflect.Type{"assetPath": stringType},
	})
	return h
}

func (h *PrefabHandler) create(p command.Payload) (any, error) {
	obj, err := h.deps.Objects.Resolve(p.GetString("source", ""))
	if err != nil {
		return nil, err
	}
	target := p.GetString("assetPath", "")
	if err := resolve.ValidatePath(target); err != nil {
		return nil, err
	}
	prefab := &editor.Prefab{
		Name:   strings.TrimSuffix(path.Base(target), path.Ext(target)),
		Source: obj.Clone(),
	}
	a, err := h.deps.Assets.Create(target, editor.AssetPrefabKind, prefab)
	if err != nil {
		return nil, err
	}
	return assetInfo(a), nil
}

func (h *PrefabHandler) loadPrefab(assetPath string) (*editor.Prefab, error) {
	if err := resolve.ValidatePath(assetPath); err != nil {
		return nil, err
	}
	a, err := h.deps.Assets.Load(assetPath)
	if err != nil {
		return nil, err
	}
	prefab, ok := a.Object.(*editor.Prefab)
	if !ok {
		return nil, fmt.Errorf("asset at %q is not a prefab", assetPath)
	}
	return prefab, nil
}

func (h *PrefabHandler) instantiate(p command.Payload) (any, error) {
	prefab, err := h.loadPrefab(p.GetString("assetPath", ""))
	if err != nil {
		return nil, err
	}
	instance := prefab.Source.Clone()
	if name := p.GetString("name", ""); name != "" {
		instance.Name = name
	}
	if pos, ok := p["position"].(unity.Vector3); ok {
		instance.Transform().LocalPosition = pos
	}
	if p.Has("parent") {
		parent, err := h.deps.Objects.Resolve(p.GetString("parent", ""))
		if err != nil {
			return nil, err
		}
		if err := instance.SetParent(parent); err != nil {
			return nil, err
		}
		h.deps.Scene.MarkDirty()
	} else {
		h.deps.Scene.AddRoot(instance)
	}
	return objectInfo(instance), nil
}

func (h *PrefabHandler) inspect(p command.Payload) (any, error) {
	prefab, err := h.loadPrefab(p.GetString("assetPath", ""))
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"name":   prefab.Name,
		"source": objectInfo(prefab.Source),
	}, nil
}
