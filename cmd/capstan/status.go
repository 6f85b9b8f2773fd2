// Package main provides the entry point for the capstan CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/seawall/capstan/internal/output"
)

// statusResult holds the data for status output.
type statusResult struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Clean   bool   `json:"clean"`
	Error   string `json:"error,omitempty"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show working tree status",
		Long: `Show the working tree status in porcelain form.

The clean flag is derived from the porcelain output: true when the
trimmed output is empty, false otherwise.

Examples:
  capstan status         # Show human-readable status
  capstan status --json  # Output status as JSON for scripting`,
		Args: cobra.NoArgs,
		RunE: runStatus,
	}
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)
	adapter, err := newAdapter()
	if err != nil {
		printer.Error(err)
		return err
	}

	res := adapter.Status(cmd.Context())

	if printer.IsJSON() {
		if writeErr := printer.WriteJSON(statusResult{
			Success: res.Success,
			Status:  res.Status,
			Clean:   res.Clean,
			Error:   res.Error,
		}); writeErr != nil {
			return writeErr
		}
		if !res.Success {
			return opFailed(strings.TrimSpace(res.Error), "status failed")
		}
		return nil
	}

	if !res.Success {
		failErr := opFailed(strings.TrimSpace(res.Error), "status failed")
		printer.Error(failErr)
		return failErr
	}

	printHumanStatus(printer, res.Status, res.Clean)
	return nil
}

// printHumanStatus outputs status in human-readable format.
func printHumanStatus(printer *output.Printer, porcelain string, clean bool) {
	printer.KeyValue("Clean", formatBool(clean))
	if clean {
		return
	}
	printer.Section("Changes")
	printer.Println(strings.TrimRight(porcelain, "\n"))
}

// formatBool returns a human-readable boolean string.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
