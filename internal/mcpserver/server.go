// Package mcpserver exposes the tools of a [tool.Catalog] over the Model
// Context Protocol.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/leofalp/rpncalc/internal/config"
	"github.com/leofalp/rpncalc/providers/observability"
	"github.com/leofalp/rpncalc/providers/tool"
)

const shutdownTimeout = 5 * time.Second

// Server wraps an MCP server whose tools are backed by a catalog.
type Server struct {
	mcp      *server.MCPServer
	observer observability.Provider
	tools    int
}

// New registers every tool of catalog on a new MCP server. observer may be
// nil, in which case calls are neither traced nor logged.
func New(name, version string, catalog *tool.Catalog, observer observability.Provider) (*Server, error) {
	s := &Server{
		mcp: server.NewMCPServer(name, version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		observer: observer,
	}

	for _, toolName := range catalog.Names() {
		t, _ := catalog.Get(toolName)
		info := t.ToolInfo()

		schema, err := info.Parameters.JSON()
		if err != nil {
			return nil, fmt.Errorf("mcpserver: schema for %s: %w", info.Name, err)
		}
		s.mcp.AddTool(
			mcp.NewToolWithRawSchema(info.Name, info.Description, json.RawMessage(schema)),
			s.Handler(t),
		)
		s.tools++
	}
	return s, nil
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Handler adapts t to an MCP tool handler. Tool failures are reported to the
// client as error results, never as protocol errors.
func (s *Server) Handler(t tool.GenericTool) server.ToolHandlerFunc {
	name := t.ToolInfo().Name

	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetRawArguments()
		if args == nil {
			args = map[string]any{}
		}
		input, err := json.Marshal(args)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		if s.observer == nil {
			output, err := t.Call(ctx, string(input))
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(output), nil
		}

		ctx, span := s.observer.StartSpan(ctx, observability.SpanToolCall,
			observability.String(observability.AttrToolName, name),
		)
		defer span.End()
		ctx = observability.ContextWithSpan(ctx, span)

		output, err := t.Call(ctx, string(input))
		if err != nil {
			span.SetStatus(observability.StatusError, err.Error())
			s.observer.Counter(observability.MetricToolCalls).Add(ctx, 1,
				observability.String(observability.AttrToolName, name),
				observability.String(observability.AttrStatus, "error"),
			)
			s.observer.Warn(ctx, "Tool call failed",
				observability.String(observability.AttrToolName, name),
				observability.Error(err),
			)
			return mcp.NewToolResultError(err.Error()), nil
		}

		span.SetStatus(observability.StatusOK, "")
		s.observer.Counter(observability.MetricToolCalls).Add(ctx, 1,
			observability.String(observability.AttrToolName, name),
			observability.String(observability.AttrStatus, "ok"),
		)
		s.observer.Debug(ctx, "Tool call completed",
			observability.String(observability.AttrToolName, name),
			observability.String(observability.AttrToolOutput, output),
		)
		return mcp.NewToolResultText(output), nil
	}
}

// Serve blocks answering requests on the given transport until ctx is
// cancelled or the transport fails.
func (s *Server) Serve(ctx context.Context, transport config.Transport, addr string) error {
	if s.observer != nil {
		s.observer.Info(ctx, "MCP server starting",
			observability.String(observability.AttrMCPTransport, string(transport)),
			observability.String(observability.AttrMCPAddr, addr),
			observability.Int(observability.AttrMCPToolsCount, s.tools),
		)
	}

	switch transport {
	case config.TransportStdio:
		err := server.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err

	case config.TransportHTTP:
		httpServer := server.NewStreamableHTTPServer(s.mcp)
		errCh := make(chan error, 1)
		go func() {
			errCh <- httpServer.Start(addr)
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		}

	default:
		return fmt.Errorf("mcpserver: unsupported transport %q", transport)
	}
}
