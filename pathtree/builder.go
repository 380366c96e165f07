package pathtree

import (
	"fmt"
)

// Builder reconstructs a hierarchy from flat records.
//
// Records are inserted in input order. Intermediate nodes are created on
// demand with no attributes. When several records decode to the same
// segment sequence their attributes are merged and a later record's value
// for a key replaces an earlier one (last write wins); the key keeps the
// position where it was first seen. Overwrites are not errors.
type Builder struct {
	// Decoder splits raw record paths into segments.
	Decoder Decoder

	// Logger receives debug output about node creation and overwrites.
	// Nil means no logging.
	Logger Logger
}

// New creates a Builder with default settings.
func New() *Builder {
	return &Builder{Logger: NopLogger{}}
}

// Build decodes every record path and inserts the records into a fresh tree,
// returning its root.
//
// The build fails fast: the first malformed path aborts it and no partial
// tree is returned. The returned error wraps a *rcerrors.MalformedPathError
// and names the zero-based index of the offending record.
func (b *Builder) Build(records []Record) (*Node, error) {
	log := b.Logger
	if log == nil {
		log = NopLogger{}
	}

	root := newNode("")
	created, overwrites := 0, 0
	for i, rec := range records {
		segments, err := b.Decoder.Decode(rec.Path)
		if err != nil {
			return nil, fmt.Errorf("pathtree: record %d: %w", i, err)
		}

		n := root
		for _, seg := range segments {
			var isNew bool
			n, isNew = n.ensureChild(seg)
			if isNew {
				created++
			}
		}

		overwritten := n.Attributes.Merge(rec.Attributes)
		if len(overwritten) == 0 {
			continue
		}
		recLog := log.With("path", rec.Path, "record", i)
		for _, key := range overwritten {
			recLog.Debug("attribute overwritten", "key", key)
		}
		overwrites += len(overwritten)
	}

	log.Debug("tree built", "records", len(records), "nodes", created, "overwrites", overwrites)
	return root, nil
}

// Build reconstructs a hierarchy from records using a default Builder.
func Build(records []Record) (*Node, error) {
	return New().Build(records)
}

// Option configures a BuildWithOptions call.
type Option func(*buildConfig) error

type buildConfig struct {
	normalize bool
	logger    Logger
}

// WithNormalize enables Unicode NFC normalization of decoded segments.
func WithNormalize(enabled bool) Option {
	return func(cfg *buildConfig) error {
		cfg.normalize = enabled
		return nil
	}
}

// WithLogger sets the logger used during the build.
func WithLogger(l Logger) Option {
	return func(cfg *buildConfig) error {
		if l == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.logger = l
		return nil
	}
}

// BuildWithOptions builds a tree from records using functional options.
//
// Example:
//
//	root, err := pathtree.BuildWithOptions(recs,
//	    pathtree.WithNormalize(true),
//	    pathtree.WithLogger(pathtree.NewSlogAdapter(nil)),
//	)
func BuildWithOptions(records []Record, opts ...Option) (*Node, error) {
	cfg := &buildConfig{logger: NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("pathtree: invalid options: %w", err)
		}
	}

	b := &Builder{
		Decoder: Decoder{Normalize: cfg.normalize},
		Logger:  cfg.logger,
	}
	return b.Build(records)
}
