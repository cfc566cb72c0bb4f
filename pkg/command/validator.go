package command

import (
	"fmt"

	"github.com/kuroyasouiti/unityforge/pkg/convert"
)

// Validator runs schema-driven pre-flight checks. Operations without a
// registered schema pass through unchecked (permissive default); a nil
// payload is always invalid. All discoverable errors from one call are
// accumulated before returning, so a caller can fix a malformed payload
// in one round trip.
type Validator struct {
	registry *convert.Registry
	schemas  map[string]*Schema
}

// NewValidator creates a validator that coerces values through the
// given converter registry.
func NewValidator(registry *convert.Registry) *Validator {
	return &Validator{
		registry: registry,
		schemas:  make(map[string]*Schema),
	}
}

// RegisterSchema binds a schema to a qualified operation name (for
// example "gameobject.create").
func (v *Validator) RegisterSchema(operation string, s *Schema) {
	v.schemas[operation] = s
}

// Schema returns the registered schema for an operation, or nil.
func (v *Validator) Schema(operation string) *Schema {
	return v.schemas[operation]
}

// Validate checks payload against the schema for operation. Stage
// order: required fields, then default injection, then type coercion,
// then custom validators. Later stages run even after earlier failures.
func (v *Validator) Validate(payload Payload, operation string) *ValidationResult {
	result := &ValidationResult{}
	if payload == nil {
		result.AddError("payload is nil")
		return result
	}

	s, ok := v.schemas[operation]
	if !ok {
		result.Normalized = payload.Clone()
		return result
	}

	normalized := payload.Clone()

	for _, name := range s.Required {
		if !payload.Has(name) {
			result.AddError(fmt.Sprintf("missing required parameter %q", name))
		}
	}

	for name, def := range s.Defaults {
		if !normalized.Has(name) {
			normalized[name] = def
		}
	}

	for name, target := range s.Types {
		if !normalized.Has(name) {
			continue
		}
		converted, err := v.registry.Convert(normalized[name], target)
		if err != nil {
			result.AddError(fmt.Sprintf("parameter %q: %v", name, err))
			continue
		}
		normalized[name] = converted
	}

	for _, custom := range s.Custom {
		if err := custom(normalized); err != nil {
			result.AddError(err.Error())
		}
	}

	result.Normalized = normalized
	return result
}
