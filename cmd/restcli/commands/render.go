package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/restcli/internal/config"
	"github.com/erraggy/restcli/internal/fileutil"
	"github.com/erraggy/restcli/internal/pathutil"
	"github.com/erraggy/restcli/pathtree"
	"github.com/erraggy/restcli/rcerrors"
)

// RenderFlags contains flags for the render command
type RenderFlags struct {
	DocumentFlags
	Prefix string
	Indent int
	Color  string
	Output string
}

// SetupRenderFlags creates and configures a FlagSet for the render command.
// Returns the FlagSet and a RenderFlags struct with bound flag variables.
func SetupRenderFlags(cfg *config.Config) (*flag.FlagSet, *RenderFlags) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	flags := &RenderFlags{}

	flags.register(fs, cfg)
	fs.StringVar(&flags.Prefix, "prefix", "", "render only the branch at this raw path (e.g. /languages/go)")
	fs.IntVar(&flags.Indent, "indent", cfg.Indent, "spaces per depth level")
	fs.StringVar(&flags.Color, "color", cfg.Color, "colorize output: auto, always, never")
	fs.StringVar(&flags.Output, "o", "", "write output to file instead of stdout")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: restcli render [flags] <file|->\n\n")
		Writef(output, "Rebuild the path hierarchy of a document and print it as nested text.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  restcli render survey.yaml\n")
		Writef(output, "  restcli render -prefix /languages/go survey.yaml\n")
		Writef(output, "  curl -s https://api.example.com/inventory | restcli render -select '$.data.records' -\n")
		Writef(output, "  restcli render -color never -o tree.txt survey.json\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Rendered successfully\n")
		Writef(output, "  1    The document could not be loaded or a record path is malformed\n")
	}

	return fs, flags
}

// HandleRender executes the render command
func HandleRender(args []string) error {
	cfg := config.Load()
	fs, flags := SetupRenderFlags(cfg)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("render command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateColorMode(flags.Color); err != nil {
		return err
	}
	if flags.Indent < 1 {
		return &rcerrors.ConfigError{Option: "indent", Value: flags.Indent, Message: "must be at least 1"}
	}

	docPath := fs.Arg(0)
	logger := flags.Logger()

	_, root, err := buildDocument(docPath, &flags.DocumentFlags, cfg, logger)
	if err != nil {
		return err
	}

	if flags.Prefix != "" {
		dec := pathtree.Decoder{Normalize: flags.Normalize}
		segs, err := dec.Decode(flags.Prefix)
		if err != nil {
			return fmt.Errorf("prefix: %w", err)
		}
		sub, ok := pathtree.Subtree(root, segs)
		if !ok {
			return fmt.Errorf("prefix %s not found in %s", flags.Prefix, FormatSourcePath(docPath))
		}
		root = sub
	}

	view := pathtree.Compress(root)
	r := &pathtree.Renderer{Indent: flags.Indent}

	if flags.Output == "" {
		r.Colors = colorsFor(stdout, flags.Color)
		return r.RenderTo(stdout, view)
	}

	outPath, err := pathutil.OutputPath(flags.Output, docPath)
	if err != nil {
		return err
	}
	if flags.Color == config.ColorAlways {
		r.Colors = colorsFor(nil, config.ColorAlways)
	}
	if err := os.WriteFile(outPath, []byte(r.Render(view)), fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Info("output written", "file", outPath)
	return nil
}
