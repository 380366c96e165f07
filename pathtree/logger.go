package pathtree

import "log/slog"

// Logger receives the builder's diagnostics: one event per overwritten
// attribute and a summary once the tree is complete. Attributes are
// key-value pairs in the log/slog convention:
//
//	logger.Debug("attribute overwritten", "path", "/languages/go", "key", "GC")
//
// Wrap a *slog.Logger with [NewSlogAdapter]:
//
//	b := pathtree.New()
//	b.Logger = pathtree.NewSlogAdapter(slog.Default())
type Logger interface {
	Debug(msg string, attrs ...any)
	With(attrs ...any) Logger
}

// NopLogger discards everything. It is the default for New and Build.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(string, ...any) {}

// With implements Logger.
func (n NopLogger) With(...any) Logger { return n }

// SlogAdapter logs through a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, or slog.Default() when logger is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements Logger.
func (s *SlogAdapter) Debug(msg string, attrs ...any) {
	s.logger.Debug(msg, attrs...)
}

// With implements Logger.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var (
	_ Logger = NopLogger{}
	_ Logger = (*SlogAdapter)(nil)
)
