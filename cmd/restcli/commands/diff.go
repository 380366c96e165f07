package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/restcli/internal/config"
	"github.com/erraggy/restcli/pathtree"
	"github.com/erraggy/restcli/rcerrors"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// ErrDifferent is returned by HandleDiff when the two renderings differ.
// The caller maps it to exit status 1 without printing it.
var ErrDifferent = errors.New("renderings differ")

// DiffFlags contains flags for the diff command
type DiffFlags struct {
	DocumentFlags
	Indent int
}

// SetupDiffFlags creates and configures a FlagSet for the diff command.
// Returns the FlagSet and a DiffFlags struct with bound flag variables.
func SetupDiffFlags(cfg *config.Config) (*flag.FlagSet, *DiffFlags) {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	flags := &DiffFlags{}

	flags.register(fs, cfg)
	fs.IntVar(&flags.Indent, "indent", cfg.Indent, "spaces per depth level")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: restcli diff [flags] <old> <new>\n\n")
		Writef(output, "Render two documents and print a line diff of the results.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  restcli diff survey-2025.yaml survey-2026.yaml\n")
		Writef(output, "  restcli diff -select '$.data.records' old.json new.json\n")
		Writef(output, "\nOutput:\n")
		Writef(output, "  Lines only in <old> are prefixed with '-', lines only in <new> with '+'.\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Renderings are identical\n")
		Writef(output, "  1    Renderings differ or an error occurred\n")
	}

	return fs, flags
}

// HandleDiff executes the diff command
func HandleDiff(args []string) error {
	cfg := config.Load()
	fs, flags := SetupDiffFlags(cfg)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("diff command requires exactly two file paths")
	}
	if fs.Arg(0) == StdinFilePath && fs.Arg(1) == StdinFilePath {
		return fmt.Errorf("only one document can be read from stdin")
	}
	if flags.Indent < 1 {
		return &rcerrors.ConfigError{Option: "indent", Value: flags.Indent, Message: "must be at least 1"}
	}

	logger := flags.Logger()
	r := &pathtree.Renderer{Indent: flags.Indent}

	texts := make([]string, 2)
	for i, path := range fs.Args() {
		_, root, err := buildDocument(path, &flags.DocumentFlags, cfg, logger)
		if err != nil {
			return err
		}
		texts[i] = r.Render(pathtree.Compress(root))
	}

	lines := DiffLines(texts[0], texts[1])
	changed := false
	for _, l := range lines {
		if l.Op != ' ' {
			changed = true
			break
		}
	}
	if !changed {
		logger.Info("renderings identical", "old", FormatSourcePath(fs.Arg(0)), "new", FormatSourcePath(fs.Arg(1)))
		return nil
	}
	if !flags.Quiet {
		Writef(stdout, "--- %s\n+++ %s\n", FormatSourcePath(fs.Arg(0)), FormatSourcePath(fs.Arg(1)))
		for _, l := range lines {
			Writef(stdout, "%c%s\n", l.Op, l.Text)
		}
	}
	return ErrDifferent
}

// DiffLine is one line of a rendering diff. Op is '-', '+' or ' '.
type DiffLine struct {
	Op   byte
	Text string
}

// DiffLines computes a line-level diff between two renderings.
func DiffLines(oldText, newText string) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToRunes(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lineArray)

	var out []DiffLine
	for _, d := range diffs {
		var op byte
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = '-'
		case diffmatchpatch.DiffInsert:
			op = '+'
		default:
			op = ' '
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out = append(out, DiffLine{Op: op, Text: strings.TrimSuffix(line, "\n")})
		}
	}
	return out
}
