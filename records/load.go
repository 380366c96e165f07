package records

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/erraggy/restcli/pathtree"
	"github.com/erraggy/restcli/rcerrors"
	"github.com/ohler55/ojg/jp"
	"go.yaml.in/yaml/v4"
)

// Default words for boolean attribute values.
const (
	DefaultTrueWord  = "yes"
	DefaultFalseWord = "no"
)

// LoadResult contains the records read from a document.
type LoadResult struct {
	// Records holds the path/attribute pairs in document order, or sorted
	// by path when a selector was used.
	Records []pathtree.Record
	// SourcePath is the file path, or a placeholder for in-memory input
	SourcePath string
	// Format is the detected document format
	Format SourceFormat
	// LoadTime is how long reading the input took
	LoadTime time.Duration
}

// Loader reads (path, attributes) records from a YAML or JSON document whose
// top level, or the value picked by Selector, maps raw paths to attribute
// mappings:
//
//	/languages/go:
//	  GC: true
//	/languages/go/applications/etcd:
//	  category: database
type Loader struct {
	// Selector is an optional JSONPath expression. The first value it
	// matches is used as the record mapping.
	Selector string

	// TrueWord and FalseWord replace boolean attribute values.
	// Empty means DefaultTrueWord and DefaultFalseWord.
	TrueWord  string
	FalseWord string
}

// New creates a Loader with default settings.
func New() *Loader {
	return &Loader{TrueWord: DefaultTrueWord, FalseWord: DefaultFalseWord}
}

// Load reads records from the file at path.
func (l *Loader) Load(path string) (*LoadResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(path)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("records: failed to read file: %w", err)
	}

	format := detectFormatFromPath(path)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}
	res, err := l.load(data, path, format)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// LoadReader reads records from r.
func (l *Loader) LoadReader(r io.Reader) (*LoadResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("records: failed to read data: %w", err)
	}
	format := detectFormatFromContent(data)
	res, err := l.load(data, placeholder("LoadReader", format), format)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// LoadBytes reads records from data.
func (l *Loader) LoadBytes(data []byte) (*LoadResult, error) {
	format := detectFormatFromContent(data)
	return l.load(data, placeholder("LoadBytes", format), format)
}

// Load reads records from the file at path using a default Loader.
func Load(path string) (*LoadResult, error) {
	return New().Load(path)
}

func placeholder(prefix string, format SourceFormat) string {
	if format == SourceFormatJSON {
		return prefix + ".json"
	}
	return prefix + ".yaml"
}

func (l *Loader) load(data []byte, source string, format SourceFormat) (*LoadResult, error) {
	res := &LoadResult{SourcePath: source, Format: format}

	var recs []pathtree.Record
	var err error
	if l.Selector == "" {
		recs, err = l.fromDocument(data, source)
	} else {
		recs, err = l.fromSelector(data, source)
	}
	if err != nil {
		return nil, err
	}
	res.Records = recs
	return res, nil
}

// fromDocument walks the document node tree so records and attribute keys
// keep their document order.
func (l *Loader) fromDocument(data []byte, source string) ([]pathtree.Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &rcerrors.LoadError{Source: source, Message: "invalid document", Cause: err}
	}
	if doc.Kind == 0 {
		return nil, nil
	}

	top := resolve(&doc)
	if top.Kind == yaml.DocumentNode {
		if len(top.Content) == 0 {
			return nil, nil
		}
		top = resolve(top.Content[0])
	}
	if isNull(top) {
		return nil, nil
	}
	if top.Kind != yaml.MappingNode {
		return nil, nodeError(source, top, "top level must be a mapping of paths to attributes")
	}

	conv := l.converter()
	recs := make([]pathtree.Record, 0, len(top.Content)/2)
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := resolve(top.Content[i]), resolve(top.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return nil, nodeError(source, key, "record path must be a string")
		}

		attrs := pathtree.NewAttributes()
		switch {
		case isNull(val):
		case val.Kind == yaml.MappingNode:
			if err := conv.mappingNode(attrs, "", val); err != nil {
				return nil, nodeError(source, val, fmt.Sprintf("record %q: %v", key.Value, err))
			}
		default:
			return nil, nodeError(source, val, fmt.Sprintf("record %q: attributes must be a mapping", key.Value))
		}
		recs = append(recs, pathtree.Record{Path: key.Value, Attributes: attrs})
	}
	return recs, nil
}

// fromSelector decodes the document generically and evaluates the JSONPath
// selector against it. Generic maps carry no order, so records and
// attribute keys come out sorted.
func (l *Loader) fromSelector(data []byte, source string) ([]pathtree.Record, error) {
	x, err := jp.ParseString(l.Selector)
	if err != nil {
		return nil, &rcerrors.LoadError{
			Source:  source,
			Message: fmt.Sprintf("invalid jsonpath %q", l.Selector),
			Cause:   err,
		}
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &rcerrors.LoadError{Source: source, Message: "invalid document", Cause: err}
	}

	matches := x.Get(doc)
	if len(matches) == 0 {
		return nil, &rcerrors.LoadError{
			Source:  source,
			Message: fmt.Sprintf("jsonpath %q matched nothing", l.Selector),
		}
	}

	if matches[0] == nil {
		return nil, nil
	}
	top, ok := matches[0].(map[string]any)
	if !ok {
		return nil, &rcerrors.LoadError{
			Source:  source,
			Message: fmt.Sprintf("jsonpath %q must select a mapping of paths to attributes, got %T", l.Selector, matches[0]),
		}
	}

	conv := l.converter()
	paths := slices.Sorted(maps.Keys(top))
	recs := make([]pathtree.Record, 0, len(paths))
	for _, p := range paths {
		attrs := pathtree.NewAttributes()
		switch v := top[p].(type) {
		case nil:
		case map[string]any:
			if err := conv.mapping(attrs, "", v); err != nil {
				return nil, &rcerrors.LoadError{Source: source, Message: fmt.Sprintf("record %q: %v", p, err)}
			}
		default:
			return nil, &rcerrors.LoadError{
				Source:  source,
				Message: fmt.Sprintf("record %q: attributes must be a mapping", p),
			}
		}
		recs = append(recs, pathtree.Record{Path: p, Attributes: attrs})
	}
	return recs, nil
}

func (l *Loader) converter() converter {
	c := converter{trueWord: l.TrueWord, falseWord: l.FalseWord}
	if c.trueWord == "" {
		c.trueWord = DefaultTrueWord
	}
	if c.falseWord == "" {
		c.falseWord = DefaultFalseWord
	}
	return c
}

func nodeError(source string, n *yaml.Node, msg string) error {
	return &rcerrors.LoadError{Source: source, Line: n.Line, Column: n.Column, Message: msg}
}
