package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the command that prints the application version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of mcp-cdisc-library",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mcp-cdisc-library version %s\n", rootCmd.Version)
		},
	}
}
