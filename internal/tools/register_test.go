package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allensrj/mcp-cdisc-library/internal/catalog"
)

func TestNewToolFromOperation(t *testing.T) {
	op := catalog.DefaultRegistry().MustGet("get_qrs_info")
	tool := NewToolFromOperation(op)

	assert.Equal(t, "get_qrs_info", tool.Name)
	assert.Equal(t, op.Description, tool.Description)
	assert.ElementsMatch(t, []string{"instrument", "version"}, tool.InputSchema.Required)
	for _, p := range op.Params {
		assert.Contains(t, tool.InputSchema.Properties, p.Name)
	}
}

func TestNewOperationHandlerMissingRequired(t *testing.T) {
	client := &fakeClient{body: []byte(`{}`)}
	sc := newTestServerContext(t, client)
	op := catalog.DefaultRegistry().MustGet("get_qrs_info")

	handler := NewOperationHandler(sc, op)
	result, err := handler(context.Background(), callRequest(map[string]any{"instrument": "AIMS01"}))
	require.NoError(t, err, "failures travel in the result, not the error")
	require.True(t, result.IsError)
	assert.Equal(t, "version is required", resultText(t, result))
	assert.Empty(t, client.paths)
}

func TestNewOperationHandlerForwardsArguments(t *testing.T) {
	client := &fakeClient{body: []byte(`{"instrument":"AIMS01"}`)}
	sc := newTestServerContext(t, client)
	op := catalog.DefaultRegistry().MustGet("get_qrs_info")

	handler := NewOperationHandler(sc, op)
	result, err := handler(context.Background(), callRequest(map[string]any{
		"instrument": "AIMS01",
		"version":    "2-0",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, []string{"/mdr/qrs/instruments/AIMS01/versions/2-0"}, client.paths)
}

func TestNewOperationHandlerSkipsEmptyOptional(t *testing.T) {
	client := &fakeClient{body: []byte(`[]`)}
	sc := newTestServerContext(t, client)
	op := catalog.DefaultRegistry().MustGet("get_sdtmig_class_info")

	handler := NewOperationHandler(sc, op)
	_, err := handler(context.Background(), callRequest(map[string]any{
		"version":   "3-4",
		"className": "",
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"/mdr/sdtmig/3-4/classes"}, client.paths, "empty optional means the listing form")
}
