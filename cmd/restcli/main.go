package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/restcli"
	"github.com/erraggy/restcli/cmd/restcli/commands"
	"github.com/erraggy/restcli/internal/cliutil"
)

// commandNames lists the subcommands suggestCommand matches against.
var commandNames = []string{"render", "paths", "diff", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("restcli v%s\n", restcli.Version())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "render":
		err = commands.HandleRender(args)
	case "paths":
		err = commands.HandlePaths(args)
	case "diff":
		err = commands.HandleDiff(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		_, _ = fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			_, _ = fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", s)
		}
		_, _ = fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		if !errors.Is(err, commands.ErrDifferent) {
			cliutil.WriteError(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Printf(`restcli - rebuild and render hierarchies from flat resource paths

Usage:
  restcli <command> [flags] [arguments]

Commands:
  render    Render a path/attribute document as nested text
  paths     List records with their decoded path segments
  diff      Show a line diff between two renderings
  mcp       Serve the render and paths tools over MCP (stdio)
  version   Show version information
  help      Show this help message

Configuration:
  Defaults are read from RESTCLI_* environment variables and ./.env.
  Flags override both.

Run 'restcli <command> --help' for more information on a command.
`)
}
