package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/restcli/pathtree"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type pathsInput struct {
	Doc       docInput `json:"doc"                 jsonschema:"The path/attribute document to list"`
	Selector  string   `json:"selector,omitempty"  jsonschema:"JSONPath locating the record mapping inside the document"`
	Normalize bool     `json:"normalize,omitempty" jsonschema:"NFC-normalize decoded segments"`
	Offset    int      `json:"offset,omitempty"    jsonschema:"Number of records to skip"`
	Limit     int      `json:"limit,omitempty"     jsonschema:"Maximum number of records to return (default from RESTCLI_LIST_LIMIT)"`
}

type attributePair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type pathEntry struct {
	Path       string          `json:"path"`
	Segments   []string        `json:"segments"`
	Attributes []attributePair `json:"attributes,omitempty"`
}

type pathsOutput struct {
	Total    int         `json:"total"`
	Returned int         `json:"returned"`
	Records  []pathEntry `json:"records,omitempty"`
}

func handlePaths(_ context.Context, _ *mcp.CallToolRequest, input pathsInput) (*mcp.CallToolResult, pathsOutput, error) {
	normalize := input.Normalize || cfg.Normalize
	doc, err := input.Doc.resolve(loadOptions{Selector: input.Selector, Normalize: normalize})
	if err != nil {
		return errResult(err), pathsOutput{}, nil
	}

	page := paginate(doc.records, input.Offset, input.Limit)
	dec := pathtree.Decoder{Normalize: normalize}
	entries := makeSlice[pathEntry](len(page))
	for _, rec := range page {
		segs, err := dec.Decode(rec.Path)
		if err != nil {
			return errResult(fmt.Errorf("record %q: %w", rec.Path, err)), pathsOutput{}, nil
		}
		entry := pathEntry{Path: rec.Path, Segments: segs}
		for k, v := range rec.Attributes.All() {
			entry.Attributes = append(entry.Attributes, attributePair{Key: k, Value: v})
		}
		entries = append(entries, entry)
	}

	return nil, pathsOutput{
		Total:    len(doc.records),
		Returned: len(entries),
		Records:  entries,
	}, nil
}
