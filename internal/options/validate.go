// Package options validates groups of mutually exclusive inputs shared by
// the records loader and the MCP tools.
package options

import (
	"strings"

	"github.com/erraggy/restcli/rcerrors"
)

// Source names one way of supplying input and whether the caller used it.
type Source struct {
	Name string
	Set  bool
}

// ExactlyOne returns a *rcerrors.ConfigError for group unless exactly one of
// sources is set. When several are set, the error's Value lists them.
func ExactlyOne(group string, sources ...Source) error {
	names := make([]string, 0, len(sources))
	var set []string
	for _, s := range sources {
		names = append(names, s.Name)
		if s.Set {
			set = append(set, s.Name)
		}
	}
	if len(set) == 1 {
		return nil
	}

	err := &rcerrors.ConfigError{
		Option:  group,
		Message: "exactly one of " + joinOr(names) + " must be provided",
	}
	if len(set) > 1 {
		err.Value = strings.Join(set, ", ")
	}
	return err
}

// joinOr renders names as "a", "a or b", or "a, b or c".
func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
