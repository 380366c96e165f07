package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/erraggy/restcli/internal/testutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "restcli-test", Version: "test"},
		nil,
	)
	registerAllTools(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func callTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Tools, 2)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
	assert.True(t, slices.Contains(names, "render"))
	assert.True(t, slices.Contains(names, "paths"))
}

func TestIntegration_CallTool_Render(t *testing.T) {
	resetCache(t)
	session := startTestSession(t)

	result := callTool(t, session, "render", map[string]any{
		"doc": map[string]any{"content": testutil.SurveyYAML},
	})
	assert.False(t, result.IsError, "render should succeed")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, testutil.SurveyOutput, structured["text"])
	assert.Equal(t, float64(8), structured["record_count"])
	assert.Equal(t, "yaml", structured["format"])
}

func TestIntegration_CallTool_RenderPrefix(t *testing.T) {
	resetCache(t)
	session := startTestSession(t)

	result := callTool(t, session, "render", map[string]any{
		"doc":      map[string]any{"content": testutil.SurveyJSON},
		"selector": "$.data.records",
		"prefix":   "/languages/C%2FC++/applications/linux",
		"indent":   4,
	})
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, ".languages.C/C++.applications.linux:\n    category kernel\n", structured["text"])
}

func TestIntegration_CallTool_RenderErrors(t *testing.T) {
	resetCache(t)
	session := startTestSession(t)

	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing doc", map[string]any{"doc": map[string]any{}}},
		{"malformed record path", map[string]any{"doc": map[string]any{"content": "/a//b: {}\n"}}},
		{"prefix not found", map[string]any{"doc": map[string]any{"content": testutil.SurveyYAML}, "prefix": "/languages/cobol"}},
		{"malformed prefix", map[string]any{"doc": map[string]any{"content": testutil.SurveyYAML}, "prefix": "languages"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callTool(t, session, "render", tt.args)
			assert.True(t, result.IsError)
		})
	}
}

func TestIntegration_CallTool_Paths(t *testing.T) {
	resetCache(t)
	session := startTestSession(t)

	result := callTool(t, session, "paths", map[string]any{
		"doc":    map[string]any{"content": testutil.SurveyYAML},
		"offset": 5,
		"limit":  2,
	})
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(8), structured["total"])
	assert.Equal(t, float64(2), structured["returned"])

	recs, ok := structured["records"].([]any)
	require.True(t, ok)
	require.Len(t, recs, 2)

	first := recs[0].(map[string]any)
	assert.Equal(t, "/languages/C%2FC++", first["path"])
	assert.Equal(t, []any{"languages", "C/C++"}, first["segments"])
	assert.Equal(t, []any{map[string]any{"key": "GC", "value": "no"}}, first["attributes"])
}

// unmarshalStructured extracts the structured output as a map.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}
