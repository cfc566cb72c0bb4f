package unityforge

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/kuroyasouiti/unityforge/internal/gate"
	"github.com/kuroyasouiti/unityforge/pkg/command"
	"github.com/kuroyasouiti/unityforge/pkg/convert"
	"github.com/kuroyasouiti/unityforge/pkg/editor"
	"github.com/kuroyasouiti/unityforge/pkg/handlers"
	"github.com/kuroyasouiti/unityforge/pkg/journal"
	"github.com/kuroyasouiti/unityforge/pkg/observability"
	"github.com/kuroyasouiti/unityforge/pkg/resolve"
	"github.com/kuroyasouiti/unityforge/pkg/serialize"
)

// Bridge wires the dispatch core: converter registry, resolvers,
// validator, compilation gate, serializer and the category handlers.
// Construct it once at startup; registries are read-only afterwards.
type Bridge struct {
	scene       *editor.Scene
	assets      *editor.AssetDatabase
	compilation *editor.CompilationState

	converters *convert.Registry
	payloads   *command.Validator
	serializer *serialize.Serializer
	gate       *gate.Gate
	handlers   map[string]handlers.CommandHandler

	journal journal.Store
	metrics *observability.Metrics
	log     *slog.Logger
}

// Option configures a Bridge under construction.
type Option func(*Bridge)

// WithScene supplies the active scene instead of an empty one.
func WithScene(scene *editor.Scene) Option {
	return func(b *Bridge) { b.scene = scene }
}

// WithAssets supplies the asset database instead of an empty one.
func WithAssets(db *editor.AssetDatabase) Option {
	return func(b *Bridge) { b.assets = db }
}

// WithJournal replaces the default in-memory command journal.
func WithJournal(store journal.Store) Option {
	return func(b *Bridge) { b.journal = store }
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *observability.Metrics) Option {
	return func(b *Bridge) { b.metrics = m }
}

// WithLogger replaces the default logger.
func WithLogger(log *slog.Logger) Option {
	return func(b *Bridge) { b.log = log }
}

// WithGateTiming overrides the compilation gate ceiling and poll
// interval.
func WithGateTiming(timeout, interval time.Duration) Option {
	return func(b *Bridge) { b.gate = gate.New(b.compilation, timeout, interval) }
}

// New builds a fully wired bridge.
func New(opts ...Option) *Bridge {
	b := &Bridge{
		scene:       editor.NewScene("Untitled"),
		assets:      editor.NewAssetDatabase(),
		compilation: &editor.CompilationState{},
		serializer:  serialize.New(0),
		journal:     journal.NewMemoryStore(0),
		log:         slog.Default(),
		handlers:    make(map[string]handlers.CommandHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.gate == nil {
		b.gate = gate.New(b.compilation, 0, 0)
	}

	objects := resolve.NewGameObjectResolver(b.scene)
	assetRefs := resolve.NewAssetResolver(b.assets)
	types := resolve.NewTypeResolver()

	registry := convert.NewRegistry(
		convert.WithObjectResolution(objects, assetRefs),
		convert.WithLogger(b.log),
	)
	registry.RegisterEnum(reflect.TypeOf(editor.LightType(0)), editor.LightTypeNames)
	registry.RegisterEnum(reflect.TypeOf(editor.PrimitiveType(0)), editor.PrimitiveTypeNames)
	registry.RegisterEnum(reflect.TypeOf(editor.ForceMode(0)), editor.ForceModeNames)
	b.converters = registry
	b.payloads = command.NewValidator(registry)

	deps := handlers.Deps{
		Scene:     b.scene,
		Assets:    b.assets,
		Objects:   objects,
		AssetRefs: assetRefs,
		Types:     types,
		Convert:   registry,
		Validator: b.payloads,
		Log:       b.log,
	}
	for _, h := range []handlers.CommandHandler{
		handlers.NewSceneHandler(deps),
		handlers.NewGameObjectHandler(deps),
		handlers.NewComponentHandler(deps),
		handlers.NewAssetHandler(deps),
		handlers.NewPrefabHandler(deps),
	} {
		b.handlers[h.Category()] = h
	}
	return b
}

// Categories lists the registered handler categories.
func (b *Bridge) Categories() []string {
	out := make([]string, 0, len(b.handlers))
	for name := range b.handlers {
		out = append(out, name)
	}
	return out
}

// Handler returns the handler for a category, or nil.
func (b *Bridge) Handler(category string) handlers.CommandHandler {
	return b.handlers[category]
}

// Compilation exposes the compilation state so the host (or tests) can
// flip it.
func (b *Bridge) Compilation() *editor.CompilationState { return b.compilation }

// Journal exposes the command journal.
func (b *Bridge) Journal() journal.Store { return b.journal }

// Converters exposes the converter registry, mainly for embedding
// hosts that register additional enum tables.
func (b *Bridge) Converters() *convert.Registry { return b.converters }

// Dispatch runs one command end to end: structural validation, schema
// validation, the compilation gate for mutating operations, the handler
// method, and result serialization. Errors become failure results, not
// panics.
func (b *Bridge) Dispatch(ctx context.Context, category string, payload command.Payload) command.Result {
	start := time.Now()
	id := uuid.NewString()

	handler, ok := b.handlers[category]
	if !ok {
		return command.NewError(fmt.Sprintf("unknown command category %q", category))
	}

	if payload == nil {
		return command.NewValidationError([]string{"payload is nil"})
	}
	operation := payload.Operation()
	if operation == "" {
		return command.NewValidationError([]string{"missing required parameter \"operation\""})
	}

	vr := b.payloads.Validate(payload, category+"."+operation)
	if !vr.IsValid() {
		return command.NewValidationError(vr.Errors)
	}

	var wait gate.WaitInfo
	if !handler.IsReadOnly(operation) {
		wait = b.gate.Wait()
		if wait.Waited {
			b.log.Info("compilation gate",
				"category", category, "operation", operation,
				"duration", wait.Duration, "timedOut", wait.TimedOut)
			if b.metrics != nil {
				b.metrics.ObserveGateWait(wait.TimedOut)
			}
		}
	}

	data, err := handler.Handle(operation, vr.Normalized)
	elapsed := time.Since(start)

	var result command.Result
	if err != nil {
		b.log.Warn("command failed", "category", category, "operation", operation, "err", err)
		result = command.NewError(err.Error())
	} else {
		result = command.NewSuccess(b.serializer.ToWire(data))
	}
	result["id"] = id
	if wait.Waited {
		result.AttachCompilationWait(wait.Waited, wait.Duration.Milliseconds(), wait.TimedOut)
	}

	if b.metrics != nil {
		b.metrics.ObserveCommand(category, operation, err == nil, elapsed)
	}
	entry := journal.Entry{
		ID:        id,
		Category:  category,
		Operation: operation,
		Success:   err == nil,
		Duration:  elapsed,
		Timestamp: start,
		Waited:    wait.Waited,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	if jerr := b.journal.Record(ctx, entry); jerr != nil {
		b.log.Warn("journal record failed", "err", jerr)
	}
	return result
}
