package convert

import (
	"path"
	"reflect"
	"strings"

	"github.com/kuroyasouiti/unityforge/pkg/editor"
	"github.com/kuroyasouiti/unityforge/pkg/resolve"
)

var (
	gameObjectType = reflect.TypeOf(&editor.GameObject{})
	transformType  = reflect.TypeOf(&editor.Transform{})
	assetType      = reflect.TypeOf(&editor.Asset{})
	materialType   = reflect.TypeOf(&editor.Material{})
	textAssetType  = reflect.TypeOf(&editor.TextAsset{})
	prefabType     = reflect.TypeOf(&editor.Prefab{})
)

// referenceConverter resolves wire values into live handles: scene
// objects, their components or transforms, and assets. It sits at the
// top of the chain so reference-shaped targets never fall through to
// generic struct decoding.
type referenceConverter struct {
	objects *resolve.GameObjectResolver
	assets  *resolve.AssetResolver
}

func (c *referenceConverter) Priority() int { return prioReference }

func (c *referenceConverter) CanConvert(target reflect.Type) bool {
	switch target {
	case gameObjectType, assetType, materialType, textAssetType, prefabType:
		return true
	}
	return editor.IsComponentType(target)
}

func (c *referenceConverter) Convert(value any, target reflect.Type) (any, error) {
	// A live instance of a compatible runtime type passes through.
	if rv := reflect.ValueOf(value); rv.IsValid() && rv.Type().AssignableTo(target) {
		return value, nil
	}

	switch v := value.(type) {
	case string:
		return c.resolveIdentifier(v, target)
	case map[string]any:
		identifier, ok := referencePath(v)
		if !ok {
			return nil, convErr(value, target, "no recognized reference key ($ref, $path, _gameObjectPath, or single-entry path)")
		}
		return c.resolveIdentifier(identifier, target)
	}
	return nil, convErr(value, target, "expected identifier string or reference mapping")
}

// referencePath extracts the path from a reference mapping, trying each
// recognized shape in fixed priority order.
func referencePath(m map[string]any) (string, bool) {
	if s, ok := m["$ref"].(string); ok {
		return s, true
	}
	if t, ok := m["$type"].(string); ok && t == "reference" {
		if s, ok := m["$path"].(string); ok {
			return s, true
		}
	}
	if s, ok := m["$path"].(string); ok {
		return s, true
	}
	if s, ok := m["_gameObjectPath"].(string); ok {
		return s, true
	}
	if len(m) == 1 {
		for _, v := range m {
			if s, ok := v.(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

// resolveIdentifier disambiguates asset paths from scene paths with the
// project convention: asset-root prefix plus a file extension. A scene
// object literally named with that shape is misclassified; the
// heuristic is kept as-is.
func (c *referenceConverter) resolveIdentifier(identifier string, target reflect.Type) (any, error) {
	if strings.HasPrefix(identifier, editor.AssetRoot+"/") && path.Ext(identifier) != "" {
		asset, err := c.assets.Resolve(identifier)
		if err != nil {
			return nil, convErr(identifier, target, "%v", err)
		}
		return adaptAsset(asset, identifier, target)
	}
	obj := c.objects.TryResolve(identifier)
	if obj == nil {
		return nil, convErr(identifier, target, "no scene object matches")
	}
	return adaptSceneObject(obj, identifier, target)
}

// adaptSceneObject shapes a resolved scene node to the destination: the
// node itself, its transform, or an attached component looked up by
// type. A missing component fails loudly.
func adaptSceneObject(obj *editor.GameObject, identifier string, target reflect.Type) (any, error) {
	switch target {
	case gameObjectType:
		return obj, nil
	case transformType:
		return obj.Transform(), nil
	}
	if editor.IsComponentType(target) {
		comp, err := obj.Component(target)
		if err != nil {
			return nil, convErr(identifier, target, "%v", err)
		}
		return comp, nil
	}
	return nil, convErr(identifier, target, "scene object cannot satisfy target type")
}

func adaptAsset(asset *editor.Asset, identifier string, target reflect.Type) (any, error) {
	if target == assetType {
		return asset, nil
	}
	if asset.Object != nil && reflect.TypeOf(asset.Object).AssignableTo(target) {
		return asset.Object, nil
	}
	return nil, convErr(identifier, target, "asset of kind %s cannot satisfy target type", asset.Kind)
}
