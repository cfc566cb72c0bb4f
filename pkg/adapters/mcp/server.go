// Package mcp exposes the bridge as an MCP server over stdio or SSE.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	unityforge "github.com/kuroyasouiti/unityforge"
	"github.com/kuroyasouiti/unityforge/pkg/command"
)

// Server wraps a Bridge and exposes one MCP tool per command category.
type Server struct {
	bridge    *unityforge.Bridge
	mcpServer *server.MCPServer
	log       *slog.Logger
}

// NewServer creates the MCP server and registers the category tools.
func NewServer(bridge *unityforge.Bridge, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		bridge:    bridge,
		mcpServer: server.NewMCPServer("unityforge", strings.TrimSpace(unityforge.Version)),
		log:       log,
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{Addr: addr, Handler: mux}

	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// categoryDescriptions drive the tool registration; the operation
// vocabulary itself is discovered from the handlers.
var categoryDescriptions = map[string]string{
	"scene":      "Inspect the active scene hierarchy and manage the save marker.",
	"gameobject": "Create, find, reparent, rename and delete scene objects.",
	"component":  "Attach components and get or set their properties by name.",
	"asset":      "Browse and manage project assets (folders, materials, text).",
	"prefab":     "Snapshot scene objects into prefabs and instantiate them.",
}

func (s *Server) registerTools() {
	for _, category := range s.bridge.Categories() {
		handler := s.bridge.Handler(category)
		desc := categoryDescriptions[category]
		tool := mcp.NewTool("unity_"+category,
			mcp.WithDescription(fmt.Sprintf("%s Operations: %s.", desc, strings.Join(handler.Operations(), ", "))),
			mcp.WithString("operation",
				mcp.Required(),
				mcp.Description("Operation to perform"),
			),
			mcp.WithString("params",
				mcp.Description("JSON object with the operation parameters"),
			),
		)
		s.mcpServer.AddTool(tool, s.toolHandler(category))
	}
}

func (s *Server) toolHandler(category string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		payload := command.Payload{}
		if raw, ok := args["params"].(string); ok && strings.TrimSpace(raw) != "" {
			if err := json.Unmarshal([]byte(raw), &payload); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("params is not a JSON object: %v", err)), nil
			}
		}
		if op, ok := args["operation"].(string); ok {
			payload[command.OperationKey] = op
		}

		result := s.bridge.Dispatch(ctx, category, payload)
		jsonBytes, err := json.Marshal(result)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("serialize result: %v", err)), nil
		}
		if success, _ := result["success"].(bool); !success {
			return mcp.NewToolResultError(string(jsonBytes)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	}
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("unityforge://journal", "Recent Command Journal",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		entries, err := s.bridge.Journal().Recent(ctx, 50)
		if err != nil {
			return nil, fmt.Errorf("failed to read journal: %w", err)
		}
		jsonBytes, _ := json.Marshal(entries)
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "unityforge://journal",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
