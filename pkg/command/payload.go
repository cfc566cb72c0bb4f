// Package command defines the wire-side command surface: untyped
// payloads, per-operation schemas, and the pre-flight validator that
// normalizes a payload before a handler runs.
package command

import "strings"

// OperationKey is the parameter every category handler requires.
const OperationKey = "operation"

// Payload is the untyped parameter mapping of one command. Treat a
// received payload as immutable; the validator produces a normalized
// copy with defaults applied and types coerced.
type Payload map[string]any

// Clone makes a shallow copy.
func (p Payload) Clone() Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Operation returns the trimmed operation name, empty when absent.
func (p Payload) Operation() string {
	s, _ := p[OperationKey].(string)
	return strings.TrimSpace(s)
}

// GetString returns the string at key, or fallback when absent or not
// a string.
func (p Payload) GetString(key, fallback string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return fallback
}

// GetBool returns the bool at key, or fallback.
func (p Payload) GetBool(key string, fallback bool) bool {
	if b, ok := p[key].(bool); ok {
		return b
	}
	return fallback
}

// GetInt returns the integer at key, accepting JSON float64 values, or
// fallback.
func (p Payload) GetInt(key string, fallback int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}

// GetMap returns the nested mapping at key, or nil.
func (p Payload) GetMap(key string) map[string]any {
	m, _ := p[key].(map[string]any)
	return m
}

// Has reports whether key carries a usable value: present, non-nil, and
// for strings non-blank.
func (p Payload) Has(key string) bool {
	v, ok := p[key]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) != ""
	}
	return true
}
