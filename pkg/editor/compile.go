package editor

import "sync"

// CompilationState tracks whether the host Editor is mid-recompile.
// The real Editor flips this asynchronously; tests and the HTTP
// control surface flip it explicitly.
type CompilationState struct {
	mu        sync.Mutex
	compiling bool
}

// IsCompiling reports whether a script compilation is in flight.
func (c *CompilationState) IsCompiling() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compiling
}

// SetCompiling records a compilation starting or finishing.
func (c *CompilationState) SetCompiling(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.compiling = v
}
