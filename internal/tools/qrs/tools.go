// Package qrs registers the questionnaires, ratings and scales tool. An
// instrument and one of its published versions must be given together; the
// accepted pairs are captured in the catalog's dependent allow-list.
package qrs

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/allensrj/mcp-cdisc-library/internal/catalog"
	"github.com/allensrj/mcp-cdisc-library/internal/server"
	"github.com/allensrj/mcp-cdisc-library/internal/tools"
)

// RegisterQRSTools registers the QRS instrument tool on s.
func RegisterQRSTools(s *mcpserver.MCPServer, sc *server.ServerContext, registry *catalog.Registry) error {
	return tools.RegisterOperations(s, sc, registry,
		"get_qrs_info",
	)
}
