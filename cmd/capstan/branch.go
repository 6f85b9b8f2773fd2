// Package main provides the entry point for the capstan CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"
)

// createBranchResult holds the data for branch creation output.
type createBranchResult struct {
	Success    bool   `json:"success"`
	Branch     string `json:"branch"`
	CheckedOut bool   `json:"checked_out"`
	Error      string `json:"error,omitempty"`
}

// newBranchCmd creates the branch creation command.
func newBranchCmd() *cobra.Command {
	var checkout bool
	cmd := &cobra.Command{
		Use:   "branch <name>",
		Short: "Create a new branch",
		Long: `Create a new branch and, by default, switch to it.

Only the creation step determines the reported outcome: a failed
switch is not separately reported, and checked_out echoes the request
rather than a verified state.

Examples:
  capstan branch feature-x
  capstan branch feature-x --checkout=false
  capstan branch feature-x --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBranch(cmd, args[0], checkout)
		},
	}
	cmd.Flags().BoolVar(&checkout, "checkout", true, "Switch to the new branch after creating it")
	return cmd
}

// runBranch executes the branch creation command.
func runBranch(cmd *cobra.Command, name string, checkout bool) error {
	printer := newPrinter(cmd)
	adapter, err := newAdapter()
	if err != nil {
		printer.Error(err)
		return err
	}

	res := adapter.CreateBranch(cmd.Context(), name, checkout)

	if printer.IsJSON() {
		if writeErr := printer.WriteJSON(createBranchResult{
			Success:    res.Success,
			Branch:     res.Branch,
			CheckedOut: res.CheckedOut,
			Error:      res.Error,
		}); writeErr != nil {
			return writeErr
		}
		if !res.Success {
			return opFailed(strings.TrimSpace(res.Error), "branch creation failed")
		}
		return nil
	}

	if !res.Success {
		failErr := opFailed(strings.TrimSpace(res.Error), "branch creation failed")
		printer.Error(failErr)
		return failErr
	}

	msg := "Created branch " + name
	if checkout {
		msg += " (checked out)"
	}
	_ = printer.Success(map[string]any{"message": msg})
	return nil
}
