package commands

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/erraggy/restcli/internal/config"
	"github.com/erraggy/restcli/rcerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput redirects stdout and stderr to buffers for the duration of
// the test.
func captureOutput(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	t.Cleanup(func() { stdout, stderr = prevOut, prevErr })
	return out, errOut
}

// withStdin replaces stdin with content for the duration of the test.
func withStdin(t *testing.T, content string) {
	t.Helper()
	prev := stdin
	stdin = strings.NewReader(content)
	t.Cleanup(func() { stdin = prev })
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{FormatText, FormatJSON, FormatYAML} {
		assert.NoError(t, ValidateOutputFormat(f), f)
	}

	err := ValidateOutputFormat("xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, rcerrors.ErrConfig))
	assert.Contains(t, err.Error(), "valid formats: text, json, yaml")
}

func TestValidateColorMode(t *testing.T) {
	assert.NoError(t, ValidateColorMode(config.ColorAuto))
	assert.NoError(t, ValidateColorMode(config.ColorNever))

	var cfgErr *rcerrors.ConfigError
	require.ErrorAs(t, ValidateColorMode("sometimes"), &cfgErr)
	assert.Equal(t, "color", cfgErr.Option)
	assert.Equal(t, "sometimes", cfgErr.Value)
}

func TestOutputStructured(t *testing.T) {
	data := []PathEntry{{
		Path:       "/languages/go",
		Segments:   []string{"languages", "go"},
		Attributes: []Attribute{{Key: "GC", Value: "yes"}},
	}}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatJSON))
		assert.Contains(t, buf.String(), `"path": "/languages/go"`)
		assert.Contains(t, buf.String(), `"key": "GC"`)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatYAML))
		assert.Contains(t, buf.String(), "path: /languages/go")
		assert.Contains(t, buf.String(), "key: GC")
	})

	t.Run("text rejected", func(t *testing.T) {
		assert.Error(t, OutputStructured(io.Discard, data, FormatText))
	})
}

func TestFormatSourcePath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSourcePath(StdinFilePath))
	assert.Equal(t, "survey.yaml", FormatSourcePath("survey.yaml"))
}

func TestDocumentFlags(t *testing.T) {
	cfg := &config.Config{Normalize: true}

	t.Run("defaults from config", func(t *testing.T) {
		fs, flags := SetupPathsFlags(cfg)
		require.NoError(t, fs.Parse([]string{"doc.yaml"}))
		assert.True(t, flags.Normalize)
		assert.Empty(t, flags.Select)
		assert.False(t, flags.Quiet)
		assert.Equal(t, verbosity(0), flags.Verbose)
	})

	t.Run("repeated verbose", func(t *testing.T) {
		fs, flags := SetupPathsFlags(cfg)
		require.NoError(t, fs.Parse([]string{"-v", "-v", "-normalize=false", "-select", "$.data", "doc.yaml"}))
		assert.Equal(t, verbosity(2), flags.Verbose)
		assert.False(t, flags.Normalize)
		assert.Equal(t, "$.data", flags.Select)
	})
}

func TestDocumentFlagsLogger(t *testing.T) {
	tests := []struct {
		name    string
		flags   DocumentFlags
		enabled slog.Level
		blocked slog.Level
	}{
		{"default warns", DocumentFlags{}, slog.LevelWarn, slog.LevelInfo},
		{"verbose info", DocumentFlags{Verbose: 1}, slog.LevelInfo, slog.LevelDebug},
		{"very verbose debug", DocumentFlags{Verbose: 2}, slog.LevelDebug, slog.LevelDebug - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.flags.Logger()
			assert.True(t, l.Enabled(t.Context(), tt.enabled))
			assert.False(t, l.Enabled(t.Context(), tt.blocked))
		})
	}

	t.Run("quiet discards", func(t *testing.T) {
		_, errOut := captureOutput(t)
		d := DocumentFlags{Quiet: true, Verbose: 2}
		d.Logger().Error("boom")
		assert.Zero(t, errOut.Len())
	})
}

func TestColorsFor(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, colorsFor(&buf, config.ColorNever))
	assert.Nil(t, colorsFor(&buf, config.ColorAuto), "non-terminal writers are not colorized")
	assert.NotNil(t, colorsFor(&buf, config.ColorAlways))
}
