package editor

import (
	"reflect"
	"sort"
	"sync"
)

// typeRegistry stands in for the host Editor's loaded assemblies: a
// table of namespace-qualified component type names. Registration
// happens at init time; lookups afterwards are read-mostly, so a
// RWMutex is enough for multi-threaded hosts.
type typeRegistry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

var registry = &typeRegistry{types: make(map[string]reflect.Type)}

// RegisterType makes a component type discoverable under its
// namespace-qualified name. The type must be a pointer-to-struct.
func RegisterType(fullName string, t reflect.Type) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.types[fullName] = t
}

// LookupType resolves an exact namespace-qualified type name.
func LookupType(fullName string) (reflect.Type, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	t, ok := registry.types[fullName]
	return t, ok
}

// AllTypes snapshots every registered type name, sorted.
func AllTypes() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.types))
	for name := range registry.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NameOf returns the registered namespace-qualified name for a
// component type.
func NameOf(t reflect.Type) (string, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	for name, rt := range registry.types {
		if rt == t {
			return name, true
		}
	}
	return "", false
}

// IsComponentType reports whether t is a registered component type.
func IsComponentType(t reflect.Type) bool {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	for _, rt := range registry.types {
		if rt == t {
			return true
		}
	}
	return false
}

func init() {
	RegisterType("UnityEngine.Transform", reflect.TypeOf(&Transform{}))
	RegisterType("UnityEngine.Camera", reflect.TypeOf(&Camera{}))
	RegisterType("UnityEngine.Light", reflect.TypeOf(&Light{}))
	RegisterType("UnityEngine.MeshRenderer", reflect.TypeOf(&MeshRenderer{}))
	RegisterType("UnityEngine.Rigidbody", reflect.TypeOf(&Rigidbody{}))
	RegisterType("UnityEngine.BoxCollider", reflect.TypeOf(&BoxCollider{}))
	RegisterType("UnityEngine.AudioSource", reflect.TypeOf(&AudioSource{}))
}
