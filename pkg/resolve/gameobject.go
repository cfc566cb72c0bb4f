package resolve

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kuroyasouiti/unityforge/pkg/editor"
)

// DefaultMaxResults bounds pattern scans over large scenes.
const DefaultMaxResults = 1000

// GameObjectResolver locates scene objects by hierarchy path or name.
type GameObjectResolver struct {
	scene *editor.Scene
}

// NewGameObjectResolver creates a resolver over the active scene.
func NewGameObjectResolver(scene *editor.Scene) *GameObjectResolver {
	return &GameObjectResolver{scene: scene}
}

// Resolve interprets an identifier containing slashes as a hierarchy
// path and anything else as a name searched depth-first across the
// scene. It fails with a NotFoundError on a miss.
func (r *GameObjectResolver) Resolve(identifier string) (*editor.GameObject, error) {
	if g := r.TryResolve(identifier); g != nil {
		return g, nil
	}
	return nil, &NotFoundError{Kind: "GameObject", Identifier: identifier}
}

// TryResolve is the tolerant variant of Resolve, returning nil on a
// miss.
func (r *GameObjectResolver) TryResolve(identifier string) *editor.GameObject {
	if strings.Contains(identifier, "/") {
		return r.scene.FindByPath(identifier)
	}
	return r.scene.FindByName(identifier)
}

// Exists reports whether the identifier resolves.
func (r *GameObjectResolver) Exists(identifier string) bool {
	return r.TryResolve(identifier) != nil
}

// ResolveMany resolves each identifier independently and omits misses,
// never producing empty slots.
func (r *GameObjectResolver) ResolveMany(identifiers ...string) []*editor.GameObject {
	out := make([]*editor.GameObject, 0, len(identifiers))
	for _, id := range identifiers {
		if g := r.TryResolve(id); g != nil {
			out = append(out, g)
		}
	}
	return out
}

// ResolveByHierarchyPath walks a slash-delimited path from a scene root
// down by exact child names.
func (r *GameObjectResolver) ResolveByHierarchyPath(path string) (*editor.GameObject, error) {
	if g := r.scene.FindByPath(path); g != nil {
		return g, nil
	}
	return nil, &NotFoundError{Kind: "GameObject", Identifier: path}
}

// FindByPattern collects scene objects whose names match pattern,
// stopping once maxResults matches are found. maxResults <= 0 applies
// DefaultMaxResults. With useRegex false, the pattern is a restricted
// wildcard grammar: '*' matches any run of characters, '?' exactly one,
// everything else case-sensitive literal.
func (r *GameObjectResolver) FindByPattern(pattern string, useRegex bool, maxResults int) ([]*editor.GameObject, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	expr := pattern
	if !useRegex {
		expr = wildcardToRegex(pattern)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	var matches []*editor.GameObject
	r.scene.Walk(func(g *editor.GameObject) bool {
		if re.MatchString(g.Name) {
			matches = append(matches, g)
		}
		return len(matches) < maxResults
	})
	return matches, nil
}

// wildcardToRegex anchors the pattern and translates the two wildcard
// metacharacters, quoting everything else.
func wildcardToRegex(pattern string) string {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return b.String()
}
