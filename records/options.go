package records

import (
	"fmt"
	"io"

	"github.com/erraggy/restcli/internal/options"
)

// Option is a function that configures a load operation
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation
type loadConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	selector   string
	trueWord   string
	falseWord  string
	sourceName *string
}

// LoadWithOptions loads records using functional options.
//
// Example:
//
//	result, err := records.LoadWithOptions(
//	    records.WithFilePath("survey.yaml"),
//	    records.WithSelector("$.data.records"),
//	)
func LoadWithOptions(opts ...Option) (*LoadResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("records: invalid options: %w", err)
	}

	l := &Loader{
		Selector:  cfg.selector,
		TrueWord:  cfg.trueWord,
		FalseWord: cfg.falseWord,
	}

	var result *LoadResult
	var loadErr error
	switch {
	case cfg.filePath != nil:
		result, loadErr = l.Load(*cfg.filePath)
	case cfg.reader != nil:
		result, loadErr = l.LoadReader(cfg.reader)
	case cfg.bytes != nil:
		result, loadErr = l.LoadBytes(cfg.bytes)
	default:
		return nil, fmt.Errorf("records: no input source specified")
	}
	if loadErr != nil {
		return nil, loadErr
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{
		trueWord:  DefaultTrueWord,
		falseWord: DefaultFalseWord,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ExactlyOne("input source",
		options.Source{Name: "WithFilePath", Set: cfg.filePath != nil},
		options.Source{Name: "WithReader", Set: cfg.reader != nil},
		options.Source{Name: "WithBytes", Set: cfg.bytes != nil},
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		if r == nil {
			return fmt.Errorf("records: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		if data == nil {
			return fmt.Errorf("records: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithSelector sets a JSONPath expression locating the record mapping
// inside a larger document. Empty means the whole document.
func WithSelector(selector string) Option {
	return func(cfg *loadConfig) error {
		cfg.selector = selector
		return nil
	}
}

// WithBoolWords sets the words boolean attribute values are rendered as.
// Default: "yes" and "no"
func WithBoolWords(trueWord, falseWord string) Option {
	return func(cfg *loadConfig) error {
		if trueWord == "" || falseWord == "" {
			return fmt.Errorf("records: bool words cannot be empty")
		}
		cfg.trueWord = trueWord
		cfg.falseWord = falseWord
		return nil
	}
}

// WithSourceName overrides SourcePath in the result, which is otherwise
// the file path or a "LoadReader.yaml" style placeholder.
func WithSourceName(name string) Option {
	return func(cfg *loadConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
