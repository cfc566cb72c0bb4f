// Package serialize converts arbitrary runtime objects into wire-safe
// values: primitives pass through, collections recurse, structs
// shallow-reflect into mappings. A failure on one member is replaced by
// a diagnostic string instead of aborting the whole response, mirroring
// the converter's best-effort policy in the opposite direction.
package serialize

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// DefaultMaxDepth bounds recursion over deep object graphs.
const DefaultMaxDepth = 8

// Serializer walks typed values into nested maps, slices and
// primitives.
type Serializer struct {
	maxDepth int
}

// New creates a serializer. maxDepth <= 0 applies DefaultMaxDepth.
func New(maxDepth int) *Serializer {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Serializer{maxDepth: maxDepth}
}

// ToWire produces a wire-safe rendition of v.
func (s *Serializer) ToWire(v any) any {
	return s.walk(reflect.ValueOf(v), 0, make(map[uintptr]bool))
}

func (s *Serializer) walk(v reflect.Value, depth int, seen map[uintptr]bool) (out any) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("<serialization error: %v>", r)
		}
	}()

	if !v.IsValid() {
		return nil
	}
	if depth > s.maxDepth {
		return "<max depth exceeded>"
	}

	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > math.MaxInt64 {
			// Keep the magnitude instead of wrapping negative.
			return float64(u)
		}
		return int64(u)
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.String:
		return v.String()
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return s.walk(v.Elem(), depth, seen)
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		ptr := v.Pointer()
		if seen[ptr] {
			return "<cycle>"
		}
		seen[ptr] = true
		defer delete(seen, ptr)
		return s.walk(v.Elem(), depth, seen)
	case reflect.Slice, reflect.Array:
		out := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			out = append(out, s.walk(v.Index(i), depth+1, seen))
		}
		return out
	case reflect.Map:
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[fmt.Sprintf("%v", iter.Key().Interface())] = s.walk(iter.Value(), depth+1, seen)
		}
		return out
	case reflect.Struct:
		return s.walkStruct(v, depth, seen)
	default:
		// chan, func, unsafe pointers have no wire shape.
		return fmt.Sprintf("<unserializable kind %s>", v.Kind())
	}
}

func (s *Serializer) walkStruct(v reflect.Value, depth int, seen map[uintptr]bool) any {
	t := v.Type()
	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous {
			// Flatten embedded structs into the parent mapping.
			if nested, ok := s.walkStruct(v.Field(i), depth, seen).(map[string]any); ok {
				for k, val := range nested {
					out[k] = val
				}
			}
			continue
		}
		out[wireName(field.Name)] = s.serializeMember(v.Field(i), depth, seen)
	}
	return out
}

// serializeMember isolates per-member faults: a panic while reading or
// walking one field becomes a diagnostic string in its slot.
func (s *Serializer) serializeMember(v reflect.Value, depth int, seen map[uintptr]bool) (out any) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("<serialization error: %v>", r)
		}
	}()
	return s.walk(v, depth+1, seen)
}

// wireName lowercases the first rune of an exported field name to match
// the wire convention (X -> x, LocalPosition -> localPosition).
func wireName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
