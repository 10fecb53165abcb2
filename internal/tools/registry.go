// Package tools registers the MCP tool surface: one tool per AnkiConnect
// operation, each described by a declarative schema and dispatched through
// the adapter layer.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"anki-mcp-go/internal/anki"
	"anki-mcp-go/internal/journal"
	"anki-mcp-go/internal/schema"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Handler runs one tool call with validated arguments (defaults applied).
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Tool is one registered operation. Action names the underlying AnkiConnect
// action for the journal; Mutating marks calls worth journaling.
type Tool struct {
	Name        string
	Description string
	Action      string
	Mutating    bool
	Schema      *schema.Field
	Handler     Handler
}

// Registry holds every registered tool and wires them onto an MCP server.
type Registry struct {
	logger  *zap.Logger
	journal *journal.Journal
	tools   []Tool
}

// NewRegistry builds an empty registry. The journal may be nil.
func NewRegistry(logger *zap.Logger, j *journal.Journal) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{logger: logger, journal: j}
}

// Add registers one tool.
func (r *Registry) Add(t Tool) {
	r.tools = append(r.tools, t)
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	return r.tools
}

// Lookup finds a tool by name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	for _, t := range r.tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// Attach registers every tool on the MCP server, compiling each schema tree
// into its protocol descriptor.
func (r *Registry) Attach(s *server.MCPServer) {
	for _, t := range r.tools {
		raw, err := json.Marshal(schema.Describe(t.Schema))
		if err != nil {
			r.logger.Error("descriptor marshal failed", zap.String("tool", t.Name), zap.Error(err))
			continue
		}
		s.AddTool(mcp.NewToolWithRawSchema(t.Name, t.Description, raw), r.wrap(t))
	}
	r.logger.Info("tools registered", zap.Int("count", len(r.tools)))
}

func (r *Registry) wrap(t Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args map[string]any
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("malformed arguments: %v", err)), nil
		}
		result, err := r.Call(ctx, t, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(renderResult(result)), nil
	}
}

// Call validates args against the tool's schema and runs its handler. It is
// the shared path for the MCP server and the one-shot CLI invocation.
func (r *Registry) Call(ctx context.Context, t Tool, args map[string]any) (any, error) {
	args, violations := schema.Validate(t.Schema, args)
	if len(violations) > 0 {
		return nil, &ValidationError{Tool: t.Name, Violations: violations}
	}

	result, err := t.Handler(ctx, args)
	if err != nil {
		return nil, err
	}

	if t.Mutating && r.journal != nil {
		if jerr := r.journal.Record(ctx, t.Name, t.Action, summarize(args)); jerr != nil {
			r.logger.Warn("journal write failed", zap.String("tool", t.Name), zap.Error(jerr))
		}
	}
	return result, nil
}

// ValidationError carries every per-field diagnostic from a rejected call.
type ValidationError struct {
	Tool       string             `json:"tool"`
	Violations []schema.Violation `json:"violations"`
}

func (e *ValidationError) Error() string {
	data, err := json.Marshal(map[string]any{
		"error":      "invalid parameters",
		"tool":       e.Tool,
		"violations": e.Violations,
	})
	if err != nil {
		return fmt.Sprintf("%s: invalid parameters", e.Tool)
	}
	return string(data)
}

func renderResult(result any) string {
	switch v := result.(type) {
	case nil:
		return "null"
	case string:
		return v
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}

// RegisterAll wires the full tool surface against one client.
func RegisterAll(r *Registry, client *anki.Client, logger *zap.Logger) {
	RegisterDeckTools(r, client, logger)
	RegisterNoteTools(r, client, logger)
	RegisterCardTools(r, client, logger)
	RegisterModelTools(r, client, logger)
	RegisterQueueTools(r, client)
	RegisterSyncTool(r, client)
}

// summarize keeps journal rows short without dropping the call shape.
func summarize(args map[string]any) string {
	data, err := json.Marshal(args)
	if err != nil {
		return ""
	}
	const max = 200
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
