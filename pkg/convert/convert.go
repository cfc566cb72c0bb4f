// Package convert turns untyped wire values (nested maps, sequences,
// primitives) into strongly-typed destination values. Converters are
// strategy objects selected by priority plus a CanConvert predicate
// over the target type; the registry is built once at startup and
// read-only afterwards.
package convert

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"

	"github.com/kuroyasouiti/unityforge/pkg/resolve"
)

// Converter maps wire values to one family of target types. Both
// methods must be pure functions over (value, targetType).
type Converter interface {
	// Priority orders converter selection; higher is tried first.
	Priority() int
	// CanConvert reports whether this converter handles the target type.
	CanConvert(target reflect.Type) bool
	// Convert produces a value assignable to target.
	Convert(value any, target reflect.Type) (any, error)
}

// Selection priorities. Registration order breaks ties.
const (
	prioReference   = 100
	prioSlice       = 90
	prioUnityStruct = 80
	prioEnum        = 70
	prioUserStruct  = 60
	prioPrimitive   = 10
)

// ConversionError names the offending value and the destination type.
type ConversionError struct {
	Value  any
	Target reflect.Type
	Reason string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %T to %s: %s", e.Value, e.Target, e.Reason)
}

func convErr(value any, target reflect.Type, format string, args ...any) error {
	return &ConversionError{Value: value, Target: target, Reason: fmt.Sprintf(format, args...)}
}

// Registry holds the priority-ordered converter chain and the enum
// name tables. Construct it once, register everything, then treat it
// as read-only.
type Registry struct {
	converters []Converter
	enums      map[reflect.Type]map[string]int64
	log        *slog.Logger
}

// Option configures a Registry under construction.
type Option func(*Registry)

// WithObjectResolution wires the object-reference converter, enabling
// scene and asset handles as conversion targets.
func WithObjectResolution(objects *resolve.GameObjectResolver, assets *resolve.AssetResolver) Option {
	return func(r *Registry) {
		r.Register(&referenceConverter{objects: objects, assets: assets})
	}
}

// WithLogger sets the logger used to report best-effort partial
// conversion failures.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// NewRegistry builds a registry with the default converter chain:
// references (when wired) > slices > Unity value structs > enums >
// serializable structs > primitives.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		enums: make(map[reflect.Type]map[string]int64),
		log:   slog.Default(),
	}
	r.Register(&sliceConverter{reg: r})
	r.Register(&unityStructConverter{reg: r})
	r.Register(&enumConverter{reg: r})
	r.Register(&structConverter{reg: r})
	r.Register(&primitiveConverter{})
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register inserts a converter, keeping the chain sorted descending by
// priority. Equal priorities keep registration order.
func (r *Registry) Register(c Converter) {
	r.converters = append(r.converters, c)
	sort.SliceStable(r.converters, func(i, j int) bool {
		return r.converters[i].Priority() > r.converters[j].Priority()
	})
}

// RegisterEnum declares the name table for an enum-like integer type.
// Names must be lowercase; lookups are case-insensitive.
func (r *Registry) RegisterEnum(t reflect.Type, names map[string]int64) {
	r.enums[t] = names
}

// Convert picks the highest-priority converter accepting target and
// applies it. A nil value converts to the target's zero value, except
// for collection targets where the slice converter produces an empty
// collection.
func (r *Registry) Convert(value any, target reflect.Type) (any, error) {
	if value == nil && target.Kind() != reflect.Slice && target.Kind() != reflect.Array {
		return reflect.Zero(target).Interface(), nil
	}
	for _, c := range r.converters {
		if c.CanConvert(target) {
			return c.Convert(value, target)
		}
	}
	return nil, convErr(value, target, "no converter registered for target type")
}

// selectFor returns the converter that Convert would pick, or nil.
func (r *Registry) selectFor(target reflect.Type) Converter {
	for _, c := range r.converters {
		if c.CanConvert(target) {
			return c
		}
	}
	return nil
}
