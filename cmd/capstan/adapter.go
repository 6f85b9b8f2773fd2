// Package main provides the entry point for the capstan CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/seawall/capstan/internal/config"
	"github.com/seawall/capstan/internal/git"
	"github.com/seawall/capstan/internal/output"
)

// newPrinter builds a printer for the command honoring --json and --color.
func newPrinter(cmd *cobra.Command) *output.Printer {
	isTTY := useColor(cmd)
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), isTTY).
		WithStderr(cmd.ErrOrStderr())
}

// newAdapter builds the git adapter from the loaded configuration.
func newAdapter() (*git.Adapter, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, output.NewSystemErrorWithCause("loading configuration: "+err.Error(), err)
	}

	runner := git.NewRunner(cfg.GitBinary)
	defaults := git.Defaults{
		Remote: cfg.DefaultRemote,
		Branch: cfg.DefaultBranch,
	}
	return git.NewAdapter(runner, defaults), nil
}

// opFailed converts an unsuccessful operation into a coded error.
// The message prefers the envelope's error text, falling back to a
// generic per-operation description.
func opFailed(errText, fallback string) error {
	if errText == "" {
		return output.NewOpFailedError(fallback)
	}
	return output.NewOpFailedError(errText)
}
