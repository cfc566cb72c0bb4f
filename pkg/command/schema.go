package command

import "reflect"

// CustomValidator runs against the full normalized payload after
// structural checks and may report a cross-field consistency error.
type CustomValidator func(Payload) error

// Schema declares the parameter contract of one operation. Build
// schemas at handler-registration time and treat them as read-only.
type Schema struct {
	// Required lists parameter names that must carry a usable value.
	Required []string
	// Types maps parameter names to the destination type their value is
	// coerced toward.
	Types map[string]reflect.Type
	// Defaults maps optional parameter names to the value injected when
	// the payload omits them.
	Defaults map[string]any
	// Custom validators run last, even when earlier stages failed.
	Custom []CustomValidator
}

// ValidationResult carries the outcome of one Validate call: a success
// flag, ordered human-readable errors, and on success the normalized
// payload.
type ValidationResult struct {
	Errors     []string
	Normalized Payload
}

// IsValid reports whether validation collected no errors.
func (r *ValidationResult) IsValid() bool { return len(r.Errors) == 0 }

// AddError appends a human-readable error message.
func (r *ValidationResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}
