package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/restcli/internal/config"
	"github.com/erraggy/restcli/internal/mcpserver"
)

// SetupMCPFlags creates the FlagSet for the mcp command. It takes no flags
// of its own; configuration comes from RESTCLI_* variables and .env.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: restcli mcp\n\n")
		Writef(output, "Serve the render and paths tools over MCP (stdio transport).\n\n")
		Writef(output, "Configuration is read from RESTCLI_* environment variables and ./.env.\n")
	}
	return fs
}

// HandleMCP runs the MCP server until the client disconnects or the
// process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx, config.Load()); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
