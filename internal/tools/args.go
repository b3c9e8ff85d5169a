package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StringArg extracts a string argument from the request, returning "" when
// it is absent or not a string.
func StringArg(request mcp.CallToolRequest, name string) string {
	if v, ok := request.GetArguments()[name].(string); ok {
		return v
	}
	return ""
}

// RequireString extracts a required string argument. The second return value
// is a non-nil error result when the argument is missing or empty.
func RequireString(request mcp.CallToolRequest, name string) (string, *mcp.CallToolResult) {
	v := StringArg(request, name)
	if v == "" {
		return "", mcp.NewToolResultError(fmt.Sprintf("%s is required", name))
	}
	return v, nil
}
