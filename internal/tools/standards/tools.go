// Package standards registers the tabulation and collection standard tools:
// SDTM and SEND (model and implementation guide) plus CDASH (model and
// implementation guide, including data collection scenarios). They share a
// version-plus-selector shape: a required standard version and an optional
// class, dataset or domain selector that switches the call from its listing
// form to its detail form.
package standards

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/allensrj/mcp-cdisc-library/internal/catalog"
	"github.com/allensrj/mcp-cdisc-library/internal/server"
	"github.com/allensrj/mcp-cdisc-library/internal/tools"
)

// RegisterStandardTools registers the SDTM, SEND and CDASH tools on s.
func RegisterStandardTools(s *mcpserver.MCPServer, sc *server.ServerContext, registry *catalog.Registry) error {
	return tools.RegisterOperations(s, sc, registry,
		"get_sdtmig_class_info",
		"get_sdtmig_dataset_info",
		"get_sdtm_model_class_info",
		"get_sdtm_model_dataset_info",
		"get_sendig_class_info",
		"get_sendig_dataset_info",
		"get_cdashig_class_info",
		"get_cdashig_domain_info",
		"get_cdashig_scenarios_info",
		"get_cdash_model_class_info",
		"get_cdash_model_domain_info",
	)
}
