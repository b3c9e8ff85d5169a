package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmdProperties(t *testing.T) {
	assert.Equal(t, "mcp-cdisc-library", rootCmd.Use)
	assert.Equal(t, "MCP server for the CDISC Library", rootCmd.Short)
	assert.True(t, strings.Contains(rootCmd.Long, "Model Context Protocol"))
	assert.True(t, strings.Contains(rootCmd.Long, "CDISC Library"))
	assert.True(t, rootCmd.SilenceUsage)
}

func TestSetVersion(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() {
		rootCmd.Version = originalVersion
	}()

	testVersion := "v1.2.3-test"
	SetVersion(testVersion)

	assert.Equal(t, testVersion, rootCmd.Version)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	var foundCommands []string
	for _, cmd := range rootCmd.Commands() {
		foundCommands = append(foundCommands, cmd.Use)
	}

	assert.Contains(t, foundCommands, "version")
	assert.Contains(t, foundCommands, "self-update")
	assert.Contains(t, foundCommands, "serve")
}
