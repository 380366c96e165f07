// Package commands provides CLI command handlers for restcli.
package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/restcli/internal/cliutil"
	"github.com/erraggy/restcli/internal/config"
	"github.com/erraggy/restcli/pathtree"
	"github.com/erraggy/restcli/rcerrors"
	"github.com/erraggy/restcli/records"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Writef writes formatted output to the writer, reporting write failures on stderr.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return &rcerrors.ConfigError{
			Option:  "format",
			Value:   format,
			Message: fmt.Sprintf("valid formats: %s, %s, %s", FormatText, FormatJSON, FormatYAML),
		}
	}
	return nil
}

// ValidateColorMode validates a -color flag value.
func ValidateColorMode(mode string) error {
	if !config.ValidColor(mode) {
		return &rcerrors.ConfigError{
			Option:  "color",
			Value:   mode,
			Message: fmt.Sprintf("valid modes: %s, %s, %s", config.ColorAuto, config.ColorAlways, config.ColorNever),
		}
	}
	return nil
}

// OutputStructured writes data in the specified format (json or yaml) to w.
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(w, "%s\n", bytes)
	return nil
}

// FormatSourcePath returns a display-friendly path for the input document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSourcePath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// verbosity counts repeated -v flags.
type verbosity int

func (v *verbosity) String() string { return strconv.Itoa(int(*v)) }

func (v *verbosity) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if b {
		*v++
	}
	return nil
}

func (v *verbosity) IsBoolFlag() bool { return true }

// DocumentFlags are the flags shared by every command that reads a document.
type DocumentFlags struct {
	Select    string
	Normalize bool
	Quiet     bool
	Verbose   verbosity
}

// register binds the shared flags. Defaults come from cfg, so flags
// override RESTCLI_* settings.
func (d *DocumentFlags) register(fs *flag.FlagSet, cfg *config.Config) {
	d.Normalize = cfg.Normalize
	fs.StringVar(&d.Select, "select", "", "JSONPath locating the record mapping inside the document")
	fs.BoolVar(&d.Normalize, "normalize", d.Normalize, "NFC-normalize decoded path segments")
	fs.BoolVar(&d.Quiet, "q", false, "quiet mode: no log output")
	fs.Var(&d.Verbose, "v", "verbose logging (repeat for debug output)")
}

// Logger returns the logger selected by -q and -v. Logs go to stderr.
func (d *DocumentFlags) Logger() *slog.Logger {
	if d.Quiet {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	level := slog.LevelWarn
	switch {
	case d.Verbose >= 2:
		level = slog.LevelDebug
	case d.Verbose == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// loadDocument reads records from path, or stdin for StdinFilePath.
func loadDocument(path string, flags *DocumentFlags, cfg *config.Config) (*records.LoadResult, error) {
	opts := []records.Option{
		records.WithSelector(flags.Select),
		records.WithBoolWords(cfg.TrueWord, cfg.FalseWord),
	}
	if path == StdinFilePath {
		opts = append(opts, records.WithReader(stdin), records.WithSourceName(FormatSourcePath(path)))
	} else {
		opts = append(opts, records.WithFilePath(path))
	}
	return records.LoadWithOptions(opts...)
}

// buildDocument loads path and reconstructs its tree.
func buildDocument(path string, flags *DocumentFlags, cfg *config.Config, logger *slog.Logger) (*records.LoadResult, *pathtree.Node, error) {
	res, err := loadDocument(path, flags, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("document loaded",
		"source", res.SourcePath,
		"format", res.Format,
		"records", len(res.Records),
		"load_time", res.LoadTime)

	root, err := pathtree.BuildWithOptions(res.Records,
		pathtree.WithNormalize(flags.Normalize),
		pathtree.WithLogger(pathtree.NewSlogAdapter(logger)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", FormatSourcePath(path), err)
	}
	return res, root, nil
}

// colorsFor picks the render palette for w. Auto mode colors only
// terminals and honors NO_COLOR.
func colorsFor(w io.Writer, mode string) *pathtree.Colors {
	switch mode {
	case config.ColorNever:
		return nil
	case config.ColorAlways:
		color.NoColor = false
		return pathtree.NewColors()
	}
	if os.Getenv("NO_COLOR") != "" {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return nil
	}
	color.NoColor = false
	return pathtree.NewColors()
}
