package resolve

import (
	"fmt"
	"path"
	"strings"

	"github.com/kuroyasouiti/unityforge/pkg/editor"
)

// AssetResolver locates assets by project-relative path or GUID, and
// guards the project sandbox boundary on every path it is handed.
type AssetResolver struct {
	db *editor.AssetDatabase
}

// NewAssetResolver creates a resolver over the asset database.
func NewAssetResolver(db *editor.AssetDatabase) *AssetResolver {
	return &AssetResolver{db: db}
}

// ValidatePath enforces the project sandbox: the path must start at the
// asset root, must not carry parent-directory segments, and must not
// normalize to anything outside the root.
func ValidatePath(p string) error {
	if p != editor.AssetRoot && !strings.HasPrefix(p, editor.AssetRoot+"/") {
		return fmt.Errorf("asset path %q must start with %q", p, editor.AssetRoot+"/")
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return fmt.Errorf("asset path %q contains a parent-directory segment", p)
		}
	}
	clean := path.Clean(p)
	if clean != editor.AssetRoot && !strings.HasPrefix(clean, editor.AssetRoot+"/") {
		return fmt.Errorf("asset path %q escapes the asset root", p)
	}
	return nil
}

// Resolve interprets the identifier first as an asset path (when it
// passes the sandbox check), then as a GUID. It fails with a
// NotFoundError when neither matches.
func (r *AssetResolver) Resolve(identifier string) (*editor.Asset, error) {
	if a := r.TryResolve(identifier); a != nil {
		return a, nil
	}
	return nil, &NotFoundError{Kind: "asset", Identifier: identifier}
}

// TryResolve is the tolerant variant of Resolve.
func (r *AssetResolver) TryResolve(identifier string) *editor.Asset {
	if ValidatePath(identifier) == nil {
		if a, err := r.db.Load(identifier); err == nil {
			return a
		}
	}
	if a, err := r.db.LoadByGUID(identifier); err == nil {
		return a
	}
	return nil
}

// Exists reports whether the identifier resolves to an asset.
func (r *AssetResolver) Exists(identifier string) bool {
	return r.TryResolve(identifier) != nil
}

// ResolveMany resolves each identifier independently and omits misses.
func (r *AssetResolver) ResolveMany(identifiers ...string) []*editor.Asset {
	out := make([]*editor.Asset, 0, len(identifiers))
	for _, id := range identifiers {
		if a := r.TryResolve(id); a != nil {
			out = append(out, a)
		}
	}
	return out
}
