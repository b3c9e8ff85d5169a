// Package cmd provides the command-line interface for mcp-cdisc-library.
//
// This package implements a Cobra-based CLI with multiple subcommands:
//   - serve: Starts the MCP server (default behavior when no subcommand is provided)
//   - version: Displays the application version
//   - self-update: Updates the binary to the latest version from GitHub releases
//
// Command Structure:
//
//	mcp-cdisc-library [flags]                 # Starts the MCP server (default)
//	mcp-cdisc-library serve [flags]           # Explicitly starts the MCP server
//	mcp-cdisc-library version                 # Shows version information
//	mcp-cdisc-library self-update             # Updates to latest release
//	mcp-cdisc-library help [command]          # Shows help information
//
// The serve command supports multiple transport options:
//   - stdio: Standard input/output (default) - for command-line integration
//   - sse: Server-Sent Events over HTTP - for web-based clients
//   - streamable-http: Streamable HTTP transport - for HTTP-based integration
//
// Transport Configuration Examples:
//
//	mcp-cdisc-library serve --transport stdio
//	mcp-cdisc-library serve --transport sse --http-addr :8080 --sse-endpoint /sse
//	mcp-cdisc-library serve --transport streamable-http --http-addr :9000 --http-endpoint /mcp
//
// The CDISC Library API key is resolved from the --api-key flag, the
// CDISC_API_KEY environment variable, or the config file at
// $XDG_CONFIG_HOME/mcp-cdisc-library/config.yaml, in that order.
package cmd
