package handlers

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/kuroyasouiti/unityforge/pkg/command"
	"github.com/kuroyasouiti/unityforge/pkg/editor"
)

// ComponentHandler serves the "component" category. Its property
// operations are the main consumer of the converter registry: arbitrary
// public fields addressed by wire name, values coerced toward the
// field's static type.
type ComponentHandler struct {
	*base
}

// NewComponentHandler registers the component operations and their
// schemas.
func NewComponentHandler(deps Deps) *ComponentHandler {
	h := &ComponentHandler{base: newBase("component", deps)}

	pathAndType := map[string]reflect.Type{"path": stringType, "type": stringType}

	h.register("add", h.add, &command.Schema{
		Required: []string{"path", "type"},
		Types:    pathAndType,
	})
	h.register("remove", h.remove, &command.Schema{
		Required: []string{"path", "type"},
		Types:    pathAndType,
	})
	h.registerReadOnly("list", h.list, &command.Schema{
		Required: []string{"path"},
		Types:    map[string]reflect.Type{"path": stringType},
	})
	h.registerReadOnly("get_properties", h.getProperties, &command.Schema{
		Required: []string{"path", "type"},
		Types:    pathAndType,
	})
	h.register("set_property", h.setProperty, &command.Schema{
		Required: []string{"path", "type", "property"},
		Types: map[string]reflect.Type{
			"path":     stringType,
			"type":     stringType,
			"property": stringType,
		},
	})
	return h
}

// target resolves the (path, type) pair shared by most operations.
func (h *ComponentHandler) target(p command.Payload) (*editor.GameObject, reflect.Type, error) {
	obj, err := h.deps.Objects.Resolve(p.GetString("path", ""))
	if err != nil {
		return nil, nil, err
	}
	t, err := h.deps.Types.Resolve(p.GetString("type", ""))
	if err != nil {
		return nil, nil, err
	}
	return obj, t, nil
}

func (h *ComponentHandler) add(p command.Payload) (any, error) {
	obj, t, err := h.target(p)
	if err != nil {
		return nil, err
	}
	comp, ok := reflect.New(t.Elem()).Interface().(editor.Component)
	if !ok {
		return nil, fmt.Errorf("type %s is not a component", t)
	}
	if err := obj.AddComponent(comp); err != nil {
		return nil, err
	}
	h.deps.Scene.MarkDirty()
	return objectInfo(obj), nil
}

func (h *ComponentHandler) remove(p command.Payload) (any, error) {
	obj, t, err := h.target(p)
	if err != nil {
		return nil, err
	}
	if err := obj.RemoveComponent(t); err != nil {
		return nil, err
	}
	h.deps.Scene.MarkDirty()
	return objectInfo(obj), nil
}

func (h *ComponentHandler) list(p command.Payload) (any, error) {
	obj, err := h.deps.Objects.Resolve(p.GetString("path", ""))
	if err != nil {
		return nil, err
	}
	return objectInfo(obj), nil
}

func (h *ComponentHandler) getProperties(p command.Payload) (any, error) {
	obj, t, err := h.target(p)
	if err != nil {
		return nil, err
	}
	comp, err := obj.Component(t)
	if err != nil {
		return nil, err
	}
	// Returned as-is; the dispatcher's serializer reflects the public
	// fields into the wire mapping.
	return comp, nil
}

func (h *ComponentHandler) setProperty(p command.Payload) (any, error) {
	obj, t, err := h.target(p)
	if err != nil {
		return nil, err
	}
	comp, err := obj.Component(t)
	if err != nil {
		return nil, err
	}

	property := p.GetString("property", "")
	field, ok := fieldByWireName(t.Elem(), property)
	if !ok {
		return nil, fmt.Errorf("component %s has no property %q", t.Elem().Name(), property)
	}

	converted, err := h.deps.Convert.Convert(p["value"], field.Type)
	if err != nil {
		return nil, err
	}
	reflect.ValueOf(comp).Elem().FieldByIndex(field.Index).Set(reflect.ValueOf(converted))
	h.deps.Scene.MarkDirty()
	return map[string]any{
		"path":     obj.Path(),
		"type":     t.Elem().Name(),
		"property": property,
	}, nil
}

// fieldByWireName matches a wire property name against the exported
// fields of a component struct, case-insensitively.
func fieldByWireName(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return reflect.StructField{}, false
}
