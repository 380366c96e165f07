// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/restcli/rcerrors"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteError reports err on w. Malformed paths and load failures get the
// offending path, reason and position on separate lines.
func WriteError(w io.Writer, err error) {
	Writef(w, "Error: %v\n", err)

	var mpe *rcerrors.MalformedPathError
	if errors.As(err, &mpe) {
		Writef(w, "  path:    %s\n", mpe.Path)
		if mpe.Index >= 0 {
			Writef(w, "  segment: %d (%q)\n", mpe.Index, mpe.Segment)
		}
		Writef(w, "  reason:  %s\n", mpe.Reason)
		return
	}

	var le *rcerrors.LoadError
	if errors.As(err, &le) && le.Line > 0 {
		Writef(w, "  at:      %s:%d:%d\n", le.Source, le.Line, le.Column)
	}
}
