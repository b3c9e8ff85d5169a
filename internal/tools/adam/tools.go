// Package adam registers the Analysis Data Model tools. Product-level
// responses have their analysis variable listings cleared to keep them
// small; datastructure responses carry the variables but with hypermedia
// links pruned to the self link.
package adam

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/allensrj/mcp-cdisc-library/internal/catalog"
	"github.com/allensrj/mcp-cdisc-library/internal/server"
	"github.com/allensrj/mcp-cdisc-library/internal/tools"
)

// RegisterADaMTools registers the ADaM tools on s.
func RegisterADaMTools(s *mcpserver.MCPServer, sc *server.ServerContext, registry *catalog.Registry) error {
	return tools.RegisterOperations(s, sc, registry,
		"get_adam_product_info",
		"get_adam_datastructure_info",
	)
}
