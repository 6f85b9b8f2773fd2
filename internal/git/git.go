// Package git provides Git operations via exec for the capstan CLI and MCP server.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// DefaultBinary is the git executable used when no override is configured.
const DefaultBinary = "git"

// Result is the captured outcome of one git invocation.
// Stdout and Stderr are verbatim; callers derive trimmed views as needed.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// OK reports whether the invocation exited with status zero.
func (r Result) OK() bool {
	return r.ExitCode == 0
}

// Runner executes a git command and captures its outcome.
// The returned error is non-nil only when the process could not be
// launched at all (binary missing, permission denied, bad working
// directory); a non-zero exit is an ordinary Result, not an error.
type Runner interface {
	Run(ctx context.Context, args ...string) (Result, error)
}

// execRunner shells out to the git binary with the inherited working directory.
type execRunner struct {
	binary string
}

// NewRunner creates a Runner that invokes the given git binary.
// An empty binary falls back to DefaultBinary.
func NewRunner(binary string) Runner {
	if binary == "" {
		binary = DefaultBinary
	}
	return execRunner{binary: binary}
}

// Run executes the git command and captures exit code, stdout, and stderr.
func (r execRunner) Run(ctx context.Context, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}, nil
		}

		// Process never started: binary missing from PATH, permission
		// denied, or an invalid working directory.
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return Result{}, errors.New(r.binary + " not found: ensure git is installed and in PATH")
		}
		return Result{}, err
	}

	return Result{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// Capture executes a git command with the default binary and returns the
// captured Result. Convenience for callers that don't hold a Runner.
func Capture(ctx context.Context, args ...string) (Result, error) {
	return NewRunner(DefaultBinary).Run(ctx, args...)
}

// IsRepo checks if the current directory is inside a git repository.
func IsRepo(ctx context.Context) bool {
	res, err := Capture(ctx, "rev-parse", "--git-dir")
	return err == nil && res.OK()
}

// CurrentBranch returns the name of the current branch.
// Returns an error if not in a git repository.
func CurrentBranch(ctx context.Context) (string, error) {
	res, err := Capture(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	if !res.OK() {
		return "", errors.New("failed to get current branch: " + strings.TrimSpace(res.Stderr))
	}
	return strings.TrimSpace(res.Stdout), nil
}
