// Package rcerrors provides structured error types for the restcli library.
//
// Import path: github.com/erraggy/restcli/rcerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// so callers can tell a malformed record path apart from an unreadable input
// document or a bad option.
//
// # Error Types
//
//   - [MalformedPathError]: a record path is empty, relative, contains an
//     empty segment, or carries a bad percent-encoding
//   - [LoadError]: the input document could not be read or does not have the
//     expected path → attributes shape
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrMalformedPath]: Matches any [MalformedPathError]
//   - [ErrLoad]: Matches any [LoadError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	out, err := pathtree.Format(recs)
//	var mpe *rcerrors.MalformedPathError
//	if errors.As(err, &mpe) {
//	    fmt.Fprintf(os.Stderr, "bad path %q: %s\n", mpe.Path, mpe.Reason)
//	    os.Exit(1)
//	}
//
// All error types support chaining via the Cause field and Unwrap().
package rcerrors
