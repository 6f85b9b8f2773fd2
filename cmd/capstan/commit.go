// Package main provides the entry point for the capstan CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"
)

// commitResult holds the data for commit output.
type commitResult struct {
	Success       bool   `json:"success"`
	CommitMessage string `json:"commit_message,omitempty"`
	Output        string `json:"output"`
	Error         string `json:"error,omitempty"`
}

// newCommitCmd creates the commit command.
func newCommitCmd() *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "commit -m <message> [files...]",
		Short: "Stage changes and commit them",
		Long: `Stage changes and commit them with the given message.

With file arguments, each path is staged individually in order; the
first failed staging call stops the operation before any commit is
issued (already-staged paths stay staged). Without file arguments,
the entire working tree is staged in one call.

Examples:
  capstan commit -m "fix parser"
  capstan commit -m "fix parser" internal/parser.go internal/parser_test.go
  capstan commit -m "fix parser" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommit(cmd, args, message)
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message (required)")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

// runCommit executes the commit command.
func runCommit(cmd *cobra.Command, files []string, message string) error {
	printer := newPrinter(cmd)
	adapter, err := newAdapter()
	if err != nil {
		printer.Error(err)
		return err
	}

	res := adapter.Commit(cmd.Context(), message, files)

	if printer.IsJSON() {
		if writeErr := printer.WriteJSON(commitResult{
			Success:       res.Success,
			CommitMessage: res.CommitMessage,
			Output:        res.Output,
			Error:         res.Error,
		}); writeErr != nil {
			return writeErr
		}
		if !res.Success {
			return opFailed(commitFailureText(res.Error, res.Output), "commit failed")
		}
		return nil
	}

	if !res.Success {
		failErr := opFailed(commitFailureText(res.Error, res.Output), "commit failed")
		printer.Error(failErr)
		return failErr
	}

	if trimmed := strings.TrimSpace(res.Output); trimmed != "" {
		printer.Println(trimmed)
	}
	_ = printer.Success(map[string]any{"message": "Committed: " + message})
	return nil
}

// commitFailureText picks the most useful message for a failed commit.
// Staging and launch failures set Error; a failed commit step only has
// its stdout (git explains "nothing to commit" there).
func commitFailureText(errText, stdout string) string {
	if errText != "" {
		return strings.TrimSpace(errText)
	}
	return strings.TrimSpace(stdout)
}
