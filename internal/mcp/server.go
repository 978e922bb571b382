package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/slack-toolbridge/internal/catalog"
)

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

// New builds the MCP server over the tool registry. Every tool shares one
// handler: dispatch through the bridge pipeline and serialize the envelope.
// Handlers never return an error; failures are envelopes with
// successful=false.
func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"slack-toolbridge",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	for _, def := range cfg.Invoker.Registry().List() {
		def := def
		mcpServer.AddTool(toolSchema(def), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			env := cfg.Invoker.Dispatch(ctx, def.Name, req.GetArguments())
			payload, err := json.Marshal(env)
			if err != nil {
				return mcp.NewToolResultError("failed to serialize result: " + err.Error()), nil
			}
			return mcp.NewToolResultText(string(payload)), nil
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// toolSchema converts a catalog definition into the MCP tool schema
// advertised by tools/list.
func toolSchema(def catalog.ToolDefinition) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}
	for _, p := range def.Params {
		popts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			popts = append(popts, mcp.Required())
		}
		switch p.Type {
		case catalog.TypeInteger:
			if d, ok := p.Default.(int); ok {
				popts = append(popts, mcp.DefaultNumber(float64(d)))
			}
			opts = append(opts, mcp.WithNumber(p.Name, popts...))
		case catalog.TypeBoolean:
			if d, ok := p.Default.(bool); ok {
				popts = append(popts, mcp.DefaultBool(d))
			}
			opts = append(opts, mcp.WithBoolean(p.Name, popts...))
		case catalog.TypeEnum:
			popts = append(popts, mcp.Enum(p.Enum...))
			opts = append(opts, mcp.WithString(p.Name, popts...))
		default:
			if d, ok := p.Default.(string); ok && d != "" {
				popts = append(popts, mcp.DefaultString(d))
			}
			opts = append(opts, mcp.WithString(p.Name, popts...))
		}
	}
	return mcp.NewTool(def.Name, opts...)
}

// ServeStdio runs the MCP server over stdin/stdout until the client
// disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
