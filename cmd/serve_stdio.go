package cmd

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// runStdioServer runs the server with STDIO transport.
func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	if err := <-serverDone; err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	// Nothing is printed in stdio mode; stdout carries MCP traffic.
	return nil
}
