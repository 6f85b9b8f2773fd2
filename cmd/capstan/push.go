// Package main provides the entry point for the capstan CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"
)

// pushResult holds the data for push output.
type pushResult struct {
	Success bool   `json:"success"`
	Output  string `json:"output"`
	Error   string `json:"error,omitempty"`
}

// newPushCmd creates the push command.
func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push [remote] [branch]",
		Short: "Push commits to a remote branch",
		Long: `Push commits to a remote branch in a single attempt.

Remote defaults to origin and branch to main; both defaults can be
changed in ~/.config/capstan/config.yaml.

Examples:
  capstan push                  # push origin main (or configured defaults)
  capstan push upstream release # explicit remote and branch
  capstan push --json`,
		Args: cobra.MaximumNArgs(2),
		RunE: runPush,
	}
}

// runPush executes the push command.
func runPush(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	adapter, err := newAdapter()
	if err != nil {
		printer.Error(err)
		return err
	}

	remote, branch := "", ""
	if len(args) > 0 {
		remote = args[0]
	}
	if len(args) > 1 {
		branch = args[1]
	}

	res := adapter.Push(cmd.Context(), remote, branch)

	if printer.IsJSON() {
		if writeErr := printer.WriteJSON(pushResult{
			Success: res.Success,
			Output:  res.Output,
			Error:   res.Error,
		}); writeErr != nil {
			return writeErr
		}
		if !res.Success {
			return opFailed(strings.TrimSpace(res.Error), "push failed")
		}
		return nil
	}

	if !res.Success {
		failErr := opFailed(strings.TrimSpace(res.Error), "push failed")
		printer.Error(failErr)
		return failErr
	}

	printCaptured(printer, res.Output, res.Error)
	_ = printer.Success(map[string]any{"message": "Pushed"})
	return nil
}
