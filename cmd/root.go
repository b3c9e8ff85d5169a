package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the mcp-cdisc-library application. It is
// the entry point when the binary is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mcp-cdisc-library",
	Short: "MCP server for the CDISC Library",
	Long: `mcp-cdisc-library is a Model Context Protocol (MCP) server exposing the
CDISC Library as a set of read-only tools: the product catalog, SDTM, SEND
and CDASH classes and datasets, ADaM datastructures, QRS instruments and
controlled terminology packages.

When run without subcommands, it starts the MCP server (equivalent to
'mcp-cdisc-library serve').`,
	// SilenceUsage keeps handled runtime errors from dumping usage text.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command. It is called from main
// to inject the version stamped at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the entry point for the CLI, called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "mcp-cdisc-library version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default so MCP
	// clients can launch the bare binary.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newServeCmd())
}
