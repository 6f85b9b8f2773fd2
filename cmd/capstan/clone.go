// Package main provides the entry point for the capstan CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/seawall/capstan/internal/output"
)

// cloneResult holds the data for clone output.
type cloneResult struct {
	Success bool   `json:"success"`
	Output  string `json:"output"`
	Error   string `json:"error,omitempty"`
}

// newCloneCmd creates the clone command.
func newCloneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clone <repository-url> [destination]",
		Short: "Clone a git repository",
		Long: `Clone a git repository into a new directory.

The URL is passed to git unvalidated; git's own validation governs
failure. Without a destination, git derives one from the URL.

Examples:
  capstan clone https://example.com/repo.git
  capstan clone https://example.com/repo.git workdir
  capstan clone https://example.com/repo.git --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runClone,
	}
}

// runClone executes the clone command.
func runClone(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	adapter, err := newAdapter()
	if err != nil {
		printer.Error(err)
		return err
	}

	destination := ""
	if len(args) > 1 {
		destination = args[1]
	}

	res := adapter.Clone(cmd.Context(), args[0], destination)

	if printer.IsJSON() {
		if writeErr := printer.WriteJSON(cloneResult{
			Success: res.Success,
			Output:  res.Output,
			Error:   res.Error,
		}); writeErr != nil {
			return writeErr
		}
		if !res.Success {
			return opFailed(strings.TrimSpace(res.Error), "clone failed")
		}
		return nil
	}

	if !res.Success {
		failErr := opFailed(strings.TrimSpace(res.Error), "clone failed")
		printer.Error(failErr)
		return failErr
	}

	printCaptured(printer, res.Output, res.Error)
	_ = printer.Success(map[string]any{"message": "Cloned " + args[0]})
	return nil
}

// printCaptured echoes non-empty captured streams in human mode.
// Git reports clone and push progress on stderr, so both streams matter.
func printCaptured(printer *output.Printer, stdout, stderr string) {
	if trimmed := strings.TrimSpace(stdout); trimmed != "" {
		printer.Println(trimmed)
	}
	if trimmed := strings.TrimSpace(stderr); trimmed != "" {
		printer.Stderr("%s\n", trimmed)
	}
}
