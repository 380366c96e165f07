package pathtree

import "github.com/fatih/color"

// Colors holds the formatting functions a Renderer applies to node labels
// and attribute keys. A nil func leaves the text unchanged.
type Colors struct {
	Name func(format string, a ...any) string
	Key  func(format string, a ...any) string
}

// NewColors returns the default terminal palette. Output is only colorized
// while color.NoColor is false, which fatih/color derives from the terminal
// and the NO_COLOR environment variable.
func NewColors() *Colors {
	return &Colors{
		Name: color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Key:  color.New(color.FgYellow).SprintfFunc(),
	}
}

func (c *Colors) name(s string) string {
	if c == nil || c.Name == nil {
		return s
	}
	return c.Name("%s", s)
}

func (c *Colors) key(s string) string {
	if c == nil || c.Key == nil {
		return s
	}
	return c.Key("%s", s)
}
