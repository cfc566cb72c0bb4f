/*
Package unityforge is a command-dispatch bridge that lets an external AI
agent manipulate a running Unity Editor session over MCP.

The hard part lives in the dispatch core: untyped wire payloads (nested
maps, sequences, primitives) are validated against per-operation
schemas, coerced into strongly-typed values through a priority-ordered
converter chain, resolved into live handles (scene objects, components,
assets) by string identifier, and the typed results are reflected back
into wire-safe mappings for the response. Mutating operations pass a
compilation gate that defers them while the Editor is mid-recompile.

# Usage

Construct a Bridge once at startup and dispatch command envelopes
against it:

	bridge := unityforge.New()
	result := bridge.Dispatch(ctx, "gameobject", command.Payload{
		"operation": "create",
		"name":      "Player",
		"position":  map[string]any{"x": 0, "y": 1, "z": 0},
	})

The pkg/adapters packages expose the same Dispatch surface over MCP
(stdio and SSE) and plain HTTP.
*/
package unityforge
