package handlers

import (
	"path"
	"reflect"
	"strings"

	"github.com/kuroyasouiti/unityforge/pkg/command"
	"github.com/kuroyasouiti/unityforge/pkg/editor"
)

var stringType = reflect.TypeOf("")

// SceneHandler serves the "scene" category: hierarchy inspection and
// the save marker.
type SceneHandler struct {
	*base
}

// NewSceneHandler registers the scene operations and their schemas.
func NewSceneHandler(deps Deps) *SceneHandler {
	h := &SceneHandler{base: newBase("scene", deps)}
	h.registerReadOnly("get_active", h.getActive, nil)
	h.registerReadOnly("get_hierarchy", h.getHierarchy, &command.Schema{
		Types:    map[string]reflect.Type{"root": stringType},
		Defaults: map[string]any{"root": ""},
	})
	h.registerReadOnly("list_objects", h.listObjects, nil)
	h.register("create_object", h.createObject, &command.Schema{
		Required: []string{"path"},
		Types:    map[string]reflect.Type{"path": stringType},
	})
	h.register("save", h.save, nil)
	return h
}

func (h *SceneHandler) getActive(command.Payload) (any, error) {
	return map[string]any{
		"name":      h.deps.Scene.Name,
		"path":      h.deps.Scene.Path,
		"dirty":     h.deps.Scene.Dirty(),
		"rootCount": len(h.deps.Scene.Roots()),
	}, nil
}

func (h *SceneHandler) getHierarchy(p command.Payload) (any, error) {
	if root := p.GetString("root", ""); root != "" {
		obj, err := h.deps.Objects.Resolve(root)
		if err != nil {
			return nil, err
		}
		return hierarchyNode(obj), nil
	}
	nodes := make([]map[string]any, 0, len(h.deps.Scene.Roots()))
	for _, r := range h.deps.Scene.Roots() {
		nodes = append(nodes, hierarchyNode(r))
	}
	return map[string]any{"scene": h.deps.Scene.Name, "roots": nodes}, nil
}

func hierarchyNode(g *editor.GameObject) map[string]any {
	children := make([]map[string]any, 0, len(g.Children()))
	for _, c := range g.Children() {
		children = append(children, hierarchyNode(c))
	}
	return map[string]any{
		"name":     g.Name,
		"active":   g.Active(),
		"children": children,
	}
}

func (h *SceneHandler) listObjects(command.Payload) (any, error) {
	var paths []string
	h.deps.Scene.Walk(func(g *editor.GameObject) bool {
		paths = append(paths, g.Path())
		return true
	})
	return map[string]any{"count": len(paths), "paths": paths}, nil
}

// createObject materializes an empty object at a hierarchy path: the
// last segment names the new object, everything before it must resolve
// to an existing parent.
func (h *SceneHandler) createObject(p command.Payload) (any, error) {
	target := strings.Trim(p.GetString("path", ""), "/")
	obj := editor.NewGameObject(path.Base(target))
	if parentPath := path.Dir(target); parentPath != "." {
		parent, err := h.deps.Objects.ResolveByHierarchyPath(parentPath)
		if err != nil {
			return nil, err
		}
		if err := obj.SetParent(parent); err != nil {
			return nil, err
		}
		h.deps.Scene.MarkDirty()
		return objectInfo(obj), nil
	}
	h.deps.Scene.AddRoot(obj)
	return objectInfo(obj), nil
}

func (h *SceneHandler) save(command.Payload) (any, error) {
	wasDirty := h.deps.Scene.Dirty()
	h.deps.Scene.Save()
	return map[string]any{"saved": wasDirty}, nil
}
