// Package main provides the entry point for the capstan CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"
)

// branchListResult holds the data for branch listing output.
type branchListResult struct {
	Success  bool     `json:"success"`
	Branches []string `json:"branches"`
	Error    string   `json:"error,omitempty"`
}

// newBranchesCmd creates the branches listing command.
func newBranchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "List all branches",
		Long: `List all branches, local and remote-tracking, in git's own order.

The current-branch marker is stripped, so the checked-out branch is
listed by name like any other. No sorting, no deduplication.

Examples:
  capstan branches
  capstan branches --json`,
		Args: cobra.NoArgs,
		RunE: runBranches,
	}
}

// runBranches executes the branches command.
func runBranches(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)
	adapter, err := newAdapter()
	if err != nil {
		printer.Error(err)
		return err
	}

	res := adapter.BranchList(cmd.Context())

	if printer.IsJSON() {
		if writeErr := printer.WriteJSON(branchListResult{
			Success:  res.Success,
			Branches: res.Branches,
			Error:    res.Error,
		}); writeErr != nil {
			return writeErr
		}
		if !res.Success {
			return opFailed(strings.TrimSpace(res.Error), "branch listing failed")
		}
		return nil
	}

	if !res.Success {
		failErr := opFailed(strings.TrimSpace(res.Error), "branch listing failed")
		printer.Error(failErr)
		return failErr
	}

	for _, branch := range res.Branches {
		printer.Println(branch)
	}
	return nil
}
