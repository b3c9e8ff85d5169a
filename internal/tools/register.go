package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/allensrj/mcp-cdisc-library/internal/catalog"
	"github.com/allensrj/mcp-cdisc-library/internal/server"
)

// NewToolFromOperation builds the MCP tool schema for op. Every parameter is
// a string; allow-list membership is enforced at call time so rejections can
// name the accepted values.
func NewToolFromOperation(op *catalog.Operation) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(op.Description)}
	for _, p := range op.Params {
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		opts = append(opts, mcp.WithString(p.Name, propOpts...))
	}
	return mcp.NewTool(op.Name, opts...)
}

// NewOperationHandler returns the standard handler for op: required
// arguments are checked, then the call is delegated to Execute. The returned
// error is always nil; failures travel in the result text.
func NewOperationHandler(sc *server.ServerContext, op *catalog.Operation) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := make(map[string]string, len(op.Params))
		for _, p := range op.Params {
			if p.Required {
				v, errResult := RequireString(request, p.Name)
				if errResult != nil {
					return errResult, nil
				}
				params[p.Name] = v
				continue
			}
			if v := StringArg(request, p.Name); v != "" {
				params[p.Name] = v
			}
		}
		return Execute(ctx, sc, op, params), nil
	}
}

// RegisterOperations registers the named operations from registry on s.
func RegisterOperations(s *mcpserver.MCPServer, sc *server.ServerContext, registry *catalog.Registry, names ...string) error {
	for _, name := range names {
		op, err := registry.Get(name)
		if err != nil {
			return err
		}
		s.AddTool(NewToolFromOperation(op), NewOperationHandler(sc, op))
	}
	return nil
}
