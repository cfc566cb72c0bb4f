// Package handlers implements the per-category command handlers. Each
// handler maps an operation string onto a method, shares the converter
// registry, resolvers and validator, and declares which operations are
// read-only so the dispatcher can skip the compilation gate for them.
package handlers

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/kuroyasouiti/unityforge/pkg/command"
	"github.com/kuroyasouiti/unityforge/pkg/convert"
	"github.com/kuroyasouiti/unityforge/pkg/editor"
	"github.com/kuroyasouiti/unityforge/pkg/resolve"
)

// Operation implements one command against a normalized payload.
type Operation func(p command.Payload) (any, error)

// CommandHandler is what the dispatcher sees of a category handler.
type CommandHandler interface {
	Category() string
	Operations() []string
	IsReadOnly(operation string) bool
	Handle(operation string, p command.Payload) (any, error)
}

// Deps bundles the shared infrastructure every handler draws on.
type Deps struct {
	Scene     *editor.Scene
	Assets    *editor.AssetDatabase
	Objects   *resolve.GameObjectResolver
	AssetRefs *resolve.AssetResolver
	Types     *resolve.TypeResolver
	Convert   *convert.Registry
	Validator *command.Validator
	Log       *slog.Logger
}

// base carries the operation table and read-only set for one category.
type base struct {
	category string
	deps     Deps
	ops      map[string]Operation
	readOnly map[string]bool
}

func newBase(category string, deps Deps) *base {
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	return &base{
		category: category,
		deps:     deps,
		ops:      make(map[string]Operation),
		readOnly: make(map[string]bool),
	}
}

func (b *base) Category() string { return b.category }

// register binds an operation name to its implementation. An optional
// schema is registered under the qualified "category.operation" name.
func (b *base) register(op string, fn Operation, s *command.Schema) {
	b.ops[op] = fn
	if s != nil {
		b.deps.Validator.RegisterSchema(b.category+"."+op, s)
	}
}

// registerReadOnly is register plus the gate-skip marker.
func (b *base) registerReadOnly(op string, fn Operation, s *command.Schema) {
	b.register(op, fn, s)
	b.readOnly[op] = true
}

// Operations lists the registered operation names, sorted.
func (b *base) Operations() []string {
	names := make([]string, 0, len(b.ops))
	for name := range b.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsReadOnly reports whether the operation skips the compilation gate.
func (b *base) IsReadOnly(operation string) bool {
	return b.readOnly[operation]
}

// Handle dispatches the operation string to its implementation.
func (b *base) Handle(operation string, p command.Payload) (any, error) {
	fn, ok := b.ops[operation]
	if !ok {
		return nil, fmt.Errorf("unknown %s operation %q (known: %v)", b.category, operation, b.Operations())
	}
	return fn(p)
}
