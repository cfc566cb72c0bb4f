package editor

// Scene is the active scene's object graph: an ordered set of root
// GameObjects plus a dirty flag tracking unsaved mutations.
type Scene struct {
	Name  string
	Path  string
	roots []*GameObject
	dirty bool
}

// NewScene creates an empty scene.
func NewScene(name string) *Scene {
	return &Scene{Name: name}
}

// Roots returns the root objects in attachment order.
func (s *Scene) Roots() []*GameObject { return s.roots }

// AddRoot attaches a parentless object as a scene root and marks the
// scene dirty. An object that already is a root stays in place.
func (s *Scene) AddRoot(g *GameObject) {
	g.detach()
	for _, r := range s.roots {
		if r == g {
			return
		}
	}
	s.roots = append(s.roots, g)
	s.dirty = true
}

// Remove detaches g from the scene, whether it is a root or nested.
func (s *Scene) Remove(g *GameObject) {
	if g.parent != nil {
		g.detach()
		s.dirty = true
		return
	}
	for i, r := range s.roots {
		if r == g {
			s.roots = append(s.roots[:i], s.roots[i+1:]...)
			s.dirty = true
			return
		}
	}
}

// FindByPath walks a slash-delimited hierarchy path: the first segment
// names a root object, each following segment an exact child name.
// Returns nil when any segment fails to match.
func (s *Scene) FindByPath(path string) *GameObject {
	segments := splitHierarchyPath(path)
	if len(segments) == 0 {
		return nil
	}
	var current *GameObject
	for _, r := range s.roots {
		if r.Name == segments[0] {
			current = r
			break
		}
	}
	if current == nil {
		return nil
	}
	for _, seg := range segments[1:] {
		current = current.FindChild(seg)
		if current == nil {
			return nil
		}
	}
	return current
}

// FindByName returns the first object with the exact name anywhere in
// the scene, depth-first over roots in order.
func (s *Scene) FindByName(name string) *GameObject {
	for _, r := range s.roots {
		if r.Name == name {
			return r
		}
		if found := r.FindDescendant(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every object depth-first. Returning false from fn stops
// the walk.
func (s *Scene) Walk(fn func(*GameObject) bool) {
	var visit func(g *GameObject) bool
	visit = func(g *GameObject) bool {
		if !fn(g) {
			return false
		}
		for _, c := range g.Children() {
			if !visit(c) {
				return false
			}
		}
		return true
	}
	for _, r := range s.roots {
		if !visit(r) {
			return
		}
	}
}

// Dirty reports whether the scene has unsaved changes.
func (s *Scene) Dirty() bool { return s.dirty }

// MarkDirty flags the scene as having unsaved changes.
func (s *Scene) MarkDirty() { s.dirty = true }

// Save clears the dirty flag. Persistence itself belongs to the host
// Editor; the bridge only tracks the marker.
func (s *Scene) Save() { s.dirty = false }
