// Command selectkit searches, pages and interactively picks items from JSON
// and YAML lists.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/selectkit/internal/cli"
	"github.com/rshade/selectkit/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the CLI and returns the process exit code.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	err := root.ExecuteContext(ctx)
	code := extractExitCode(err)
	if err != nil && code != 0 {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return code
}

// extractExitCode maps a command error to a process exit code. An ExitError
// anywhere in the chain supplies its own code; any other error is 1.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
