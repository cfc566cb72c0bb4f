package editor

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/kuroyasouiti/unityforge/pkg/unity"
)

// AssetRoot is the prefix every project-relative asset path must carry.
const AssetRoot = "Assets"

// ErrAssetNotFound is returned for lookups that match no asset.
var ErrAssetNotFound = errors.New("asset not found")

// AssetKind discriminates what an Asset wraps.
type AssetKind string

const (
	AssetFolder     AssetKind = "folder"
	AssetMaterial   AssetKind = "material"
	AssetText       AssetKind = "text"
	AssetPrefabKind AssetKind = "prefab"
)

// Asset is one entry in the asset database: a stable GUID, a
// project-relative path and the wrapped object (nil for folders).
type Asset struct {
	Path   string
	GUID   string
	Kind   AssetKind
	Object any
}

// Material is a shader/color asset referenced by renderers.
type Material struct {
	Name   string
	Shader string
	Color  unity.Color
}

// TextAsset is a plain text file tracked as an asset.
type TextAsset struct {
	Name string
	Text string
}

// Prefab is a reusable snapshot of a GameObject subtree.
type Prefab struct {
	Name   string
	Source *GameObject
}

// AssetDatabase indexes assets by path and GUID. The bridge core treats
// it as the Editor's AssetDatabase surface; only the operations the
// dispatch layer needs are modeled.
type AssetDatabase struct {
	byPath map[string]*Asset
	byGUID map[string]*Asset
}

// NewAssetDatabase creates a database seeded with the asset root
// folder.
func NewAssetDatabase() *AssetDatabase {
	db := &AssetDatabase{
		byPath: make(map[string]*Asset),
		byGUID: make(map[string]*Asset),
	}
	db.put(&Asset{Path: AssetRoot, Kind: AssetFolder})
	return db
}

func (db *AssetDatabase) put(a *Asset) {
	if a.GUID == "" {
		a.GUID = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	db.byPath[a.Path] = a
	db.byGUID[a.GUID] = a
}

// Create registers obj at p, implicitly creating parent folders. An
// existing asset at the same path is an error.
func (db *AssetDatabase) Create(p string, kind AssetKind, obj any) (*Asset, error) {
	if _, exists := db.byPath[p]; exists {
		return nil, fmt.Errorf("asset already exists at %q", p)
	}
	db.ensureFolders(path.Dir(p))
	a := &Asset{Path: p, Kind: kind, Object: obj}
	db.put(a)
	return a, nil
}

// CreateFolder registers a folder at p, along with missing parents.
func (db *AssetDatabase) CreateFolder(p string) (*Asset, error) {
	if a, exists := db.byPath[p]; exists {
		if a.Kind == AssetFolder {
			return a, nil
		}
		return nil, fmt.Errorf("non-folder asset already exists at %q", p)
	}
	db.ensureFolders(p)
	return db.byPath[p], nil
}

func (db *AssetDatabase) ensureFolders(p string) {
	if p == "." || p == "" || p == "/" {
		return
	}
	if _, exists := db.byPath[p]; exists {
		return
	}
	db.ensureFolders(path.Dir(p))
	db.put(&Asset{Path: p, Kind: AssetFolder})
}

// Load returns the asset at p, or ErrAssetNotFound.
func (db *AssetDatabase) Load(p string) (*Asset, error) {
	if a, ok := db.byPath[p]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, p)
}

// LoadByGUID returns the asset with the given GUID.
func (db *AssetDatabase) LoadByGUID(guid string) (*Asset, error) {
	if a, ok := db.byGUID[guid]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("%w: guid %q", ErrAssetNotFound, guid)
}

// Contains reports whether an asset exists at p.
func (db *AssetDatabase) Contains(p string) bool {
	_, ok := db.byPath[p]
	return ok
}

// Delete removes the asset at p. Deleting a folder removes its contents
// as well.
func (db *AssetDatabase) Delete(p string) error {
	a, ok := db.byPath[p]
	if !ok {
		return fmt.Errorf("%w: %q", ErrAssetNotFound, p)
	}
	if a.Kind == AssetFolder {
		for childPath, child := range db.byPath {
			if strings.HasPrefix(childPath, p+"/") {
				delete(db.byPath, childPath)
				delete(db.byGUID, child.GUID)
			}
		}
	}
	delete(db.byPath, p)
	delete(db.byGUID, a.GUID)
	return nil
}

// Move rebinds the asset at from to the path to, keeping its GUID.
// Moving a folder carries its contents to the new prefix.
func (db *AssetDatabase) Move(from, to string) error {
	a, ok := db.byPath[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrAssetNotFound, from)
	}
	if _, exists := db.byPath[to]; exists {
		return fmt.Errorf("asset already exists at %q", to)
	}
	if a.Kind == AssetFolder && strings.HasPrefix(to+"/", from+"/") {
		return fmt.Errorf("cannot move folder %q into itself", from)
	}
	delete(db.byPath, from)
	db.ensureFolders(path.Dir(to))
	a.Path = to
	db.byPath[to] = a
	if a.Kind == AssetFolder {
		var children []*Asset
		for p, child := range db.byPath {
			if strings.HasPrefix(p, from+"/") {
				children = append(children, child)
			}
		}
		for _, child := range children {
			delete(db.byPath, child.Path)
			child.Path = to + strings.TrimPrefix(child.Path, from)
			db.byPath[child.Path] = child
		}
	}
	return nil
}

// List returns every asset under the folder prefix, sorted by path.
// The folder itself is excluded.
func (db *AssetDatabase) List(folder string) []*Asset {
	var out []*Asset
	prefix := strings.TrimSuffix(folder, "/") + "/"
	for p, a := range db.byPath {
		if strings.HasPrefix(p, prefix) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
