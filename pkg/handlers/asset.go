package handlers

import (
	"path"
	"reflect"
	"strings"

	"github.com/kuroyasouiti/unityforge/pkg/command"
	"github.com/kuroyasouiti/unityforge/pkg/editor"
	"github.com/kuroyasouiti/unityforge/pkg/resolve"
	"github.com/kuroyasouiti/unityforge/pkg/unity"
)

// AssetHandler serves the "asset" category. Every path parameter passes
// the sandbox validation before touching the database.
type AssetHandler struct {
	*base
}

// NewAssetHandler registers the asset operations and their schemas.
func NewAssetHandler(deps Deps) *AssetHandler {
	h := &AssetHandler{base: newBase("asset", deps)}

	h.registerReadOnly("list", h.list, &command.Schema{
		Types:    map[string]reflect.Type{"folder": stringType},
		Defaults: map[string]any{"folder": editor.AssetRoot},
	})
	h.registerReadOnly("info", h.info, &command.Schema{
		Required: []string{"path"},
		Types:    map[string]reflect.Type{"path": stringType},
	})
	h.registerReadOnly("find", h.find, &command.Schema{
		Required: []string{"pattern"},
		Types:    map[string]reflect.Type{"pattern": stringType},
	})
	h.register("create_folder", h.createFolder, &command.Schema{
		Required: []string{"path"},
		Types:    map[string]reflect.Type{"path": stringType},
	})
	h.register("create_material", h.createMaterial, &command.Schema{
		Required: []string{"path"},
		Types: map[string]reflect.Type{
			"path":   stringType,
			"color":  reflect.TypeOf(unity.Color{}),
			"shader": stringType,
		},
		Defaults: map[string]any{"shader": "Standard"},
		Custom: []command.CustomValidator{
			requireExtension(".mat"),
		},
	})
	h.register("create_text", h.createText, &command.Schema{
		Required: []string{"path"},
		Types:    map[string]reflect.Type{"path": stringType, "text": stringType},
		Defaults: map[string]any{"text": ""},
	})
	h.register("delete", h.delete, &command.Schema{
		Required: []string{"path"},
		Types:    map[string]reflect.Type{"path": stringType},
	})
	h.register("move", h.move, &command.Schema{
		Required: []string{"from", "to"},
		Types:    map[string]reflect.Type{"from": stringType, "to": stringType},
	})
	return h
}

// requireExtension is a cross-field schema rule for typed asset paths.
func requireExtension(ext string) command.CustomValidator {
	return func(p command.Payload) error {
		if got := path.Ext(p.GetString("path", "")); got != ext {
			return &extensionError{want: ext, got: got}
		}
		return nil
	}
}

type extensionError struct{ want, got string }

func (e *extensionError) Error() string {
	return "asset path must end in " + e.want + ", got " + e.got
}

func (h *AssetHandler) checkPath(p string) error {
	return resolve.ValidatePath(p)
}

func (h *AssetHandler) list(p command.Payload) (any, error) {
	folder := p.GetString("folder", editor.AssetRoot)
	if err := h.checkPath(folder); err != nil {
		return nil, err
	}
	assets := h.deps.Assets.List(folder)
	entries := make([]map[string]any, 0, len(assets))
	for _, a := range assets {
		entries = append(entries, assetInfo(a))
	}
	return map[string]any{"count": len(entries), "assets": entries}, nil
}

func (h *AssetHandler) info(p command.Payload) (any, error) {
	target := p.GetString("path", "")
	if err := h.checkPath(target); err != nil {
		return nil, err
	}
	a, err := h.deps.Assets.Load(target)
	if err != nil {
		return nil, err
	}
	return assetInfo(a), nil
}

func (h *AssetHandler) find(p command.Payload) (any, error) {
	pattern := strings.ToLower(p.GetString("pattern", ""))
	var out []map[string]any
	for _, a := range h.deps.Assets.List(editor.AssetRoot) {
		if strings.Contains(strings.ToLower(path.Base(a.Path)), pattern) {
			out = append(out, assetInfo(a))
		}
	}
	return map[string]any{"count": len(out), "assets": out}, nil
}

func (h *AssetHandler) createFolder(p command.Payload) (any, error) {
	target := p.GetString("path", "")
	if err := h.checkPath(target); err != nil {
		return nil, err
	}
	a, err := h.deps.Assets.CreateFolder(target)
	if err != nil {
		return nil, err
	}
	return assetInfo(a), nil
}

func (h *AssetHandler) createMaterial(p command.Payload) (any, error) {
	target := p.GetString("path", "")
	if err := h.checkPath(target); err != nil {
		return nil, err
	}
	color := unity.Color{R: 1, G: 1, B: 1, A: 1}
	if c, ok := p["color"].(unity.Color); ok {
		color = c
	}
	mat := &editor.Material{
		Name:   strings.TrimSuffix(path.Base(target), path.Ext(target)),
		Shader: p.GetString("shader", "Standard"),
		Color:  color,
	}
	a, err := h.deps.Assets.Create(target, editor.AssetMaterial, mat)
	if err != nil {
		return nil, err
	}
	return assetInfo(a), nil
}

func (h *AssetHandler) createText(p command.Payload) (any, error) {
	target := p.GetString("path", "")
	if err := h.checkPath(target); err != nil {
		return nil, err
	}
	txt := &editor.TextAsset{
		Name: strings.TrimSuffix(path.Base(target), path.Ext(target)),
		Text: p.GetString("text", ""),
	}
	a, err := h.deps.Assets.Create(target, editor.AssetText, txt)
	if err != nil {
		return nil, err
	}
	return assetInfo(a), nil
}

func (h *AssetHandler) delete(p command.Payload) (any, error) {
	target := p.GetString("path", "")
	if err := h.checkPath(target); err != nil {
		return nil, err
	}
	if err := h.deps.Assets.Delete(target); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": target}, nil
}

func (h *AssetHandler) move(p command.Payload) (any, error) {
	from, to := p.GetString("from", ""), p.GetString("to", "")
	if err := h.checkPath(from); err != nil {
		return nil, err
	}
	if err := h.checkPath(to); err != nil {
		return nil, err
	}
	if err := h.deps.Assets.Move(from, to); err != nil {
		return nil, err
	}
	return map[string]any{"from": from, "to": to}, nil
}

func assetInfo(a *editor.Asset) map[string]any {
	return map[string]any{
		"path": a.Path,
		"guid": a.GUID,
		"kind": string(a.Kind),
	}
}
