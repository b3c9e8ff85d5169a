// Package ct registers the controlled terminology tools. Package payloads
// are the largest the CDISC Library serves, so these calls run with the
// longer CT timeout and the whole-package tool reduces codelists to concept
// IDs and submission values.
package ct

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/allensrj/mcp-cdisc-library/internal/catalog"
	"github.com/allensrj/mcp-cdisc-library/internal/server"
	"github.com/allensrj/mcp-cdisc-library/internal/tools"
)

// RegisterCTTools registers the controlled terminology tools on s.
func RegisterCTTools(s *mcpserver.MCPServer, sc *server.ServerContext, registry *catalog.Registry) error {
	return tools.RegisterOperations(s, sc, registry,
		"get_package_ct_info",
		"get_package_ct_codelist_info",
		"get_package_ct_codelist_term_info",
	)
}
