package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/allensrj/mcp-cdisc-library/internal/catalog"
	"github.com/allensrj/mcp-cdisc-library/internal/server"
)

// CatalogResourceURI identifies the machine-readable catalog of exposed
// operations and their accepted parameter values.
const CatalogResourceURI = "cdisc://catalog"

// RegisterCatalogResource publishes the operation catalog as an MCP
// resource. Clients can read it to discover valid versions, classes,
// datasets and CT packages instead of probing tools with guesses.
func RegisterCatalogResource(s *mcpserver.MCPServer, sc *server.ServerContext, registry *catalog.Registry) error {
	resource := mcp.NewResource(
		CatalogResourceURI,
		"CDISC standards catalog",
		mcp.WithResourceDescription("The tools exposed by this server and the parameter values each accepts: standards families, classes, datasets, domains, ADaM product/datastructure pairs, QRS instrument versions and controlled terminology packages."),
		mcp.WithMIMEType("application/json"),
	)
	s.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.MarshalIndent(registry.Snapshot(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("serializing catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      CatalogResourceURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
	return nil
}
