// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes restcli rendering as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/restcli"
	"github.com/erraggy/restcli/internal/config"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `restcli MCP server: rebuilds a hierarchy from flat resource paths and renders it as compact nested text.

Input documents map raw, percent-encoded paths ("/languages/C%2FC++") to attribute mappings, as YAML or JSON. Use selector (JSONPath) when the records are nested inside a larger response.

Configuration: defaults come from RESTCLI_* environment variables set in your MCP client config.
- RESTCLI_INDENT (default: 2): spaces per depth level
- RESTCLI_TRUE_WORD / RESTCLI_FALSE_WORD (default: yes/no): boolean attribute words
- RESTCLI_NORMALIZE (default: false): NFC-normalize decoded segments
- RESTCLI_CACHE_SIZE (default: 64): loaded documents kept per session
- RESTCLI_LIST_LIMIT (default: 100): default page size for the paths tool

Caching: loaded documents are cached per session in an LRU. File entries use path+mtime as key (auto-invalidated on change); inline content is keyed by its SHA-256.`

// cfg is the active server configuration, initialized at package load time.
var cfg = config.FromEnv()

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled. A nil c keeps the environment defaults.
func Run(ctx context.Context, c *config.Config) error {
	if c != nil {
		cfg = c
		docCache = newDocCache(c.CacheSize)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "restcli", Version: restcli.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render a path/attribute document as nested text. Chains of attribute-free nodes with a single child are collapsed into one dotted label; siblings are sorted. Use prefix (a raw path such as /languages/go) to render only one branch, and selector (JSONPath, e.g. $.data.records) when the records are nested inside a larger document.",
	}, handleRender)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "paths",
		Description: "List the records of a path/attribute document with their decoded segments and attributes. Use offset/limit to paginate through large documents; the default limit is configurable via RESTCLI_LIST_LIMIT.",
	}, handlePaths)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
