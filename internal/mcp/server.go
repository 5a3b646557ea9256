// Package mcp wires schema inference into an MCP server over stdio.
package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/inferschema/internal/cache"
	"github.com/usestring/inferschema/internal/config"
	"github.com/usestring/inferschema/internal/mcp/tools"
	"github.com/usestring/inferschema/internal/query"
)

// Server wraps the MCP server with the inference toolset.
type Server struct {
	mcpServer *sdkmcp.Server
	deps      *tools.Deps
}

// NewServer creates an MCP server exposing the inference tools, configured
// from cfg.
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	docCache, err := cache.NewDocCache(cfg.CacheMaxItems)
	if err != nil {
		return nil, fmt.Errorf("creating schema cache: %w", err)
	}

	deps := &tools.Deps{
		Config: cfg,
		Cache:  docCache,
		Query:  query.NewEngine(),
	}

	s := &Server{deps: deps}
	s.mcpServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{
			Name:    "inferschema-mcp",
			Version: "1.0.0",
		},
		nil,
	)

	s.mcpServer.AddReceivingMiddleware(LoggingMiddleware())
	tools.Register(s.mcpServer, deps)

	return s, nil
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server for testing.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}
