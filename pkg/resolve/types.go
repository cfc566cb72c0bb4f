package resolve

import (
	"reflect"
	"sync"

	"github.com/kuroyasouiti/unityforge/pkg/editor"
)

// TypeResolver resolves component type names against the editor's
// registered type table. Results are cached keyed by the exact input
// string, so repeated lookups return the identical reflect.Type. The
// core runs single-threaded; the RWMutex covers multi-threaded hosts
// populating the cache concurrently.
type TypeResolver struct {
	mu    sync.RWMutex
	cache map[string]reflect.Type
}

// DefaultNamespaces are tried, in order, when resolving a short type
// name.
var DefaultNamespaces = []string{"UnityEngine", "UnityEngine.UI", "UnityEditor"}

// NewTypeResolver creates a resolver with an empty cache.
func NewTypeResolver() *TypeResolver {
	return &TypeResolver{cache: make(map[string]reflect.Type)}
}

func (r *TypeResolver) cached(key string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.cache[key]
	return t, ok
}

func (r *TypeResolver) store(key string, t reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache[key] = t
}

// ResolveByFullName performs an exact namespace-qualified lookup.
func (r *TypeResolver) ResolveByFullName(fullName string) (reflect.Type, error) {
	if t, ok := r.cached(fullName); ok {
		return t, nil
	}
	t, ok := editor.LookupType(fullName)
	if !ok {
		return nil, &NotFoundError{Kind: "type", Identifier: fullName}
	}
	r.store(fullName, t)
	return t, nil
}

// ResolveByShortName tries the name as given, then qualified by each
// candidate namespace in order, returning the first match. A nil
// namespace list falls back to DefaultNamespaces.
func (r *TypeResolver) ResolveByShortName(name string, namespaces []string) (reflect.Type, error) {
	if t, ok := r.cached(name); ok {
		return t, nil
	}
	if namespaces == nil {
		namespaces = DefaultNamespaces
	}
	if t, ok := editor.LookupType(name); ok {
		r.store(name, t)
		return t, nil
	}
	for _, ns := range namespaces {
		if t, ok := editor.LookupType(ns + "." + name); ok {
			r.store(name, t)
			return t, nil
		}
	}
	return nil, &NotFoundError{Kind: "type", Identifier: name}
}

// Resolve accepts either a full or a short name.
func (r *TypeResolver) Resolve(identifier string) (reflect.Type, error) {
	if t, err := r.ResolveByFullName(identifier); err == nil {
		return t, nil
	}
	return r.ResolveByShortName(identifier, nil)
}

// TryResolve is the tolerant variant of Resolve.
func (r *TypeResolver) TryResolve(identifier string) reflect.Type {
	t, err := r.Resolve(identifier)
	if err != nil {
		return nil
	}
	return t
}

// Exists reports whether the identifier resolves to a type.
func (r *TypeResolver) Exists(identifier string) bool {
	return r.TryResolve(identifier) != nil
}

// ResolveMany resolves each identifier independently and omits misses.
func (r *TypeResolver) ResolveMany(identifiers ...string) []reflect.Type {
	out := make([]reflect.Type, 0, len(identifiers))
	for _, id := range identifiers {
		if t := r.TryResolve(id); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// FindDerivedTypes scans the registered types for everything assignable
// to base but not identical to it. Base may be an interface (matched by
// implementation) or a concrete type.
func (r *TypeResolver) FindDerivedTypes(base reflect.Type) []reflect.Type {
	var out []reflect.Type
	for _, name := range editor.AllTypes() {
		t, ok := editor.LookupType(name)
		if !ok || t == base {
			continue
		}
		if base.Kind() == reflect.Interface && t.Implements(base) {
			out = append(out, t)
			continue
		}
		if t.AssignableTo(base) {
			out = append(out, t)
		}
	}
	return out
}
