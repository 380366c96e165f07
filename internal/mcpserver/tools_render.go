package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/restcli/pathtree"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type renderInput struct {
	Doc       docInput `json:"doc"                 jsonschema:"The path/attribute document to render"`
	Selector  string   `json:"selector,omitempty"  jsonschema:"JSONPath locating the record mapping inside the document"`
	Prefix    string   `json:"prefix,omitempty"    jsonschema:"Raw path of the branch to render, e.g. /languages/go"`
	Indent    int      `json:"indent,omitempty"    jsonschema:"Spaces per depth level (default from RESTCLI_INDENT)"`
	Normalize bool     `json:"normalize,omitempty" jsonschema:"NFC-normalize decoded segments so equivalent names merge"`
}

type renderOutput struct {
	Format      string `json:"format"`
	RecordCount int    `json:"record_count"`
	Text        string `json:"text"`
}

func handleRender(_ context.Context, _ *mcp.CallToolRequest, input renderInput) (*mcp.CallToolResult, renderOutput, error) {
	doc, err := input.Doc.resolve(loadOptions{
		Selector:  input.Selector,
		Normalize: input.Normalize || cfg.Normalize,
	})
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}

	root := doc.root
	if input.Prefix != "" {
		dec := pathtree.Decoder{Normalize: input.Normalize || cfg.Normalize}
		segs, err := dec.Decode(input.Prefix)
		if err != nil {
			return errResult(fmt.Errorf("prefix: %w", err)), renderOutput{}, nil
		}
		sub, ok := pathtree.Subtree(root, segs)
		if !ok {
			return errResult(fmt.Errorf("prefix %q not found", input.Prefix)), renderOutput{}, nil
		}
		root = sub
	}

	indent := input.Indent
	if indent <= 0 {
		indent = cfg.Indent
	}
	r := &pathtree.Renderer{Indent: indent}

	return nil, renderOutput{
		Format:      string(doc.format),
		RecordCount: len(doc.records),
		Text:        r.Render(pathtree.Compress(root)),
	}, nil
}
