package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd(t *testing.T) {
	tests := []struct {
		name           string
		version        string
		expectedOutput string
	}{
		{
			name:           "dev version",
			version:        "dev",
			expectedOutput: "mcp-cdisc-library version dev\n",
		},
		{
			name:           "semantic version",
			version:        "v1.2.3",
			expectedOutput: "mcp-cdisc-library version v1.2.3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalVersion := rootCmd.Version
			defer func() { rootCmd.Version = originalVersion }()
			rootCmd.Version = tt.version

			cmd := newVersionCmd()
			var buf bytes.Buffer
			cmd.SetOut(&buf)

			assert.NoError(t, cmd.Execute())
			assert.Equal(t, tt.expectedOutput, buf.String())
		})
	}
}

func TestVersionCmdProperties(t *testing.T) {
	cmd := newVersionCmd()
	assert.Equal(t, "version", cmd.Use)
	assert.Contains(t, cmd.Short, "mcp-cdisc-library")
}
