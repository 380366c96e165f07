package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/erraggy/restcli/internal/options"
	"github.com/erraggy/restcli/pathtree"
	"github.com/erraggy/restcli/records"
)

// docInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a YAML or JSON document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

// loadOptions are the settings that change what a loaded document contains.
type loadOptions struct {
	Selector  string
	Normalize bool
}

// loadedDoc is a document's records together with the tree built from them.
type loadedDoc struct {
	records []pathtree.Record
	root    *pathtree.Node
	format  records.SourceFormat
}

// docCache is a session-scoped LRU of loaded documents.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. Both include the load options.
var docCache = newDocCache(cfg.CacheSize)

func newDocCache(size int) *lru.Cache[string, *loadedDoc] {
	if size <= 0 {
		size = 1
	}
	c, err := lru.New[string, *loadedDoc](size)
	if err != nil {
		// Only reachable with a non-positive size, excluded above.
		panic(err)
	}
	return c
}

// makeCacheKey creates a cache key for the given input and options.
// Returns empty string when the input cannot be keyed reliably.
func makeCacheKey(d docInput, opts loadOptions) string {
	suffix := fmt.Sprintf("|sel=%s|nfc=%t|words=%s/%s", opts.Selector, opts.Normalize, cfg.TrueWord, cfg.FalseWord)
	switch {
	case d.File != "":
		absPath, err := filepath.Abs(d.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "" // Can't stat, don't cache.
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano()) + suffix
	case d.Content != "":
		h := sha256.Sum256([]byte(d.Content))
		return "content:" + hex.EncodeToString(h[:]) + suffix
	default:
		return ""
	}
}

// resolve loads the document from whichever input was provided and builds
// its tree, using the cache for both input kinds.
func (d docInput) resolve(opts loadOptions) (*loadedDoc, error) {
	if err := options.ExactlyOne("doc",
		options.Source{Name: "file", Set: d.File != ""},
		options.Source{Name: "content", Set: d.Content != ""},
	); err != nil {
		return nil, err
	}

	if d.Content != "" && int64(len(d.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set RESTCLI_MAX_INLINE_SIZE to increase",
			len(d.Content), cfg.MaxInlineSize)
	}

	key := makeCacheKey(d, opts)
	if key != "" {
		if cached, ok := docCache.Get(key); ok {
			return cached, nil
		}
	}

	loadOpts := []records.Option{
		records.WithSelector(opts.Selector),
		records.WithBoolWords(cfg.TrueWord, cfg.FalseWord),
	}
	if d.File != "" {
		loadOpts = append(loadOpts, records.WithFilePath(d.File))
	} else {
		loadOpts = append(loadOpts, records.WithReader(strings.NewReader(d.Content)))
	}

	res, err := records.LoadWithOptions(loadOpts...)
	if err != nil {
		return nil, err
	}
	root, err := pathtree.BuildWithOptions(res.Records, pathtree.WithNormalize(opts.Normalize))
	if err != nil {
		return nil, err
	}

	doc := &loadedDoc{records: res.Records, root: root, format: res.Format}
	if key != "" {
		docCache.Add(key, doc)
	}
	return doc, nil
}
