// Package resolve translates string identifiers into live handles in
// the editor object graph and asset database. Every resolver offers the
// same contract: Resolve fails loudly, TryResolve returns the zero
// handle, Exists answers without a handle, and ResolveMany drops
// failures instead of leaving holes.
package resolve

import "fmt"

// NotFoundError reports an identifier that matched nothing.
type NotFoundError struct {
	Kind       string
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.Identifier)
}

// IsNotFound reports whether err is a resolver miss.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}
