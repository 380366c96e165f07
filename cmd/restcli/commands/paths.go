package commands

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/restcli/internal/config"
	"github.com/erraggy/restcli/pathtree"
)

// PathsFlags contains flags for the paths command
type PathsFlags struct {
	DocumentFlags
	Format string
}

// Attribute is one key/value pair in structured paths output.
type Attribute struct {
	Key   string `json:"key"   yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// PathEntry describes one record in structured paths output.
type PathEntry struct {
	Path       string      `json:"path"                 yaml:"path"`
	Segments   []string    `json:"segments"             yaml:"segments"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// SetupPathsFlags creates and configures a FlagSet for the paths command.
// Returns the FlagSet and a PathsFlags struct with bound flag variables.
func SetupPathsFlags(cfg *config.Config) (*flag.FlagSet, *PathsFlags) {
	fs := flag.NewFlagSet("paths", flag.ContinueOnError)
	flags := &PathsFlags{}

	flags.register(fs, cfg)
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: restcli paths [flags] <file|->\n\n")
		Writef(output, "List each record's raw path, decoded segments and attributes.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  restcli paths survey.yaml\n")
		Writef(output, "  restcli paths -format json -select '$.data.records' response.json\n")
		Writef(output, "\nText output columns:\n")
		Writef(output, "  PATH      raw record path as written in the document\n")
		Writef(output, "  SEGMENTS  decoded segments joined with ' / '\n")
		Writef(output, "  ATTRS     number of attributes\n")
	}

	return fs, flags
}

// HandlePaths executes the paths command
func HandlePaths(args []string) error {
	cfg := config.Load()
	fs, flags := SetupPathsFlags(cfg)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("paths command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	docPath := fs.Arg(0)
	res, err := loadDocument(docPath, &flags.DocumentFlags, cfg)
	if err != nil {
		return err
	}

	dec := pathtree.Decoder{Normalize: flags.Normalize}
	entries := make([]PathEntry, 0, len(res.Records))
	for i, rec := range res.Records {
		segs, err := dec.Decode(rec.Path)
		if err != nil {
			return fmt.Errorf("%s: record %d: %w", FormatSourcePath(docPath), i, err)
		}
		entry := PathEntry{Path: rec.Path, Segments: segs}
		for k, v := range rec.Attributes.All() {
			entry.Attributes = append(entry.Attributes, Attribute{Key: k, Value: v})
		}
		entries = append(entries, entry)
	}

	if flags.Format != FormatText {
		return OutputStructured(stdout, entries, flags.Format)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Path, strings.Join(e.Segments, " / "), strconv.Itoa(len(e.Attributes))})
	}
	RenderSummaryTable(stdout, []string{"PATH", "SEGMENTS", "ATTRS"}, rows, flags.Quiet)
	return nil
}
