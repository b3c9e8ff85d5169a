// Package products registers the CDISC Library product catalog tool.
package products

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/allensrj/mcp-cdisc-library/internal/catalog"
	"github.com/allensrj/mcp-cdisc-library/internal/server"
	"github.com/allensrj/mcp-cdisc-library/internal/tools"
)

// RegisterProductTools registers the product listing tool on s.
func RegisterProductTools(s *mcpserver.MCPServer, sc *server.ServerContext, registry *catalog.Registry) error {
	return tools.RegisterOperations(s, sc, registry,
		"get_CDISC_Library_api_product_list",
	)
}
