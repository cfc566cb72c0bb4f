package editor

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrComponentNotFound is returned when a component lookup on a
// GameObject finds no instance of the requested type.
var ErrComponentNotFound = errors.New("component not found")

// GameObject is a node in the scene hierarchy. Every object owns a
// Transform; other components are attached explicitly. Hierarchy links
// and the component list stay unexported so the generic serializer
// never walks back up the graph.
type GameObject struct {
	Name string

	active     bool
	parent     *GameObject
	children   []*GameObject
	components []Component
	transform  *Transform
}

// NewGameObject creates a detached, active object with a fresh
// Transform.
func NewGameObject(name string) *GameObject {
	g := &GameObject{Name: name, active: true}
	g.transform = &Transform{LocalScale: one3}
	g.transform.bind(g)
	g.components = append(g.components, g.transform)
	return g
}

// Active reports the object's own active flag (not the hierarchy
// cumulative state).
func (g *GameObject) Active() bool { return g.active }

// SetActive toggles the object's active flag.
func (g *GameObject) SetActive(v bool) { g.active = v }

// Transform returns the object's transform, which always exists.
func (g *GameObject) Transform() *Transform { return g.transform }

// Parent returns the parent object, or nil for a scene root.
func (g *GameObject) Parent() *GameObject { return g.parent }

// Children returns the direct children in attachment order.
func (g *GameObject) Children() []*GameObject { return g.children }

// SetParent reparents g under parent. A nil parent detaches g, making
// it eligible to be a scene root. Reparenting to a descendant of g is
// rejected to keep the hierarchy acyclic.
func (g *GameObject) SetParent(parent *GameObject) error {
	for p := parent; p != nil; p = p.parent {
		if p == g {
			return fmt.Errorf("cannot parent %q under its own descendant", g.Name)
		}
	}
	g.detach()
	g.parent = parent
	if parent != nil {
		parent.children = append(parent.children, g)
	}
	return nil
}

func (g *GameObject) detach() {
	if g.parent == nil {
		return
	}
	siblings := g.parent.children
	for i, c := range siblings {
		if c == g {
			g.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	g.parent = nil
}

// Path returns the slash-delimited hierarchy path from the root down to
// this object.
func (g *GameObject) Path() string {
	if g.parent == nil {
		return g.Name
	}
	return g.parent.Path() + "/" + g.Name
}

// Components returns all attached components, transform first.
func (g *GameObject) Components() []Component { return g.components }

// AddComponent attaches c to g. Adding a second Transform is rejected.
func (g *GameObject) AddComponent(c Component) error {
	if _, ok := c.(*Transform); ok {
		return fmt.Errorf("%q already has a Transform", g.Name)
	}
	c.bind(g)
	g.components = append(g.components, c)
	return nil
}

// Component returns the first attached component whose concrete type
// matches t (a pointer-to-struct type), or ErrComponentNotFound.
func (g *GameObject) Component(t reflect.Type) (Component, error) {
	for _, c := range g.components {
		if reflect.TypeOf(c) == t {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s on %q", ErrComponentNotFound, t.String(), g.Name)
}

// RemoveComponent detaches the first component of concrete type t.
// The Transform cannot be removed.
func (g *GameObject) RemoveComponent(t reflect.Type) error {
	if t == reflect.TypeOf(&Transform{}) {
		return fmt.Errorf("cannot remove Transform from %q", g.Name)
	}
	for i, c := range g.components {
		if reflect.TypeOf(c) == t {
			g.components = append(g.components[:i], g.components[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s on %q", ErrComponentNotFound, t.String(), g.Name)
}

// FindChild returns the direct child with the exact name, or nil.
func (g *GameObject) FindChild(name string) *GameObject {
	for _, c := range g.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindDescendant walks the subtree rooted at g depth-first and returns
// the first object (excluding g itself) with the exact name.
func (g *GameObject) FindDescendant(name string) *GameObject {
	for _, c := range g.children {
		if c.Name == name {
			return c
		}
		if found := c.FindDescendant(name); found != nil {
			return found
		}
	}
	return nil
}

// Clone produces a deep copy of the subtree rooted at g, detached from
// any parent. Component values are copied shallowly field-by-field.
func (g *GameObject) Clone() *GameObject {
	dup := NewGameObject(g.Name)
	dup.active = g.active
	for _, c := range g.components {
		src := reflect.ValueOf(c).Elem()
		if t, ok := c.(*Transform); ok {
			*dup.transform = *t
			dup.transform.bind(dup)
			continue
		}
		copyVal := reflect.New(src.Type())
		copyVal.Elem().Set(src)
		clone := copyVal.Interface().(Component)
		clone.bind(dup)
		dup.components = append(dup.components, clone)
	}
	for _, child := range g.children {
		childDup := child.Clone()
		childDup.parent = dup
		dup.children = append(dup.children, childDup)
	}
	return dup
}

func splitHierarchyPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
