package git

import (
	"context"
	"strings"
)

// Defaults holds the fallback remote and branch applied when a caller
// omits them. Zero values resolve to "origin" and "main".
type Defaults struct {
	Remote string
	Branch string
}

// Adapter translates operation requests into git invocations and
// normalizes the outcome into per-operation result envelopes. It is
// stateless per call; the only shared state is the on-disk repository,
// whose locking discipline belongs to git itself.
type Adapter struct {
	runner   Runner
	defaults Defaults
}

// NewAdapter creates an Adapter over the given runner.
func NewAdapter(runner Runner, defaults Defaults) *Adapter {
	if defaults.Remote == "" {
		defaults.Remote = "origin"
	}
	if defaults.Branch == "" {
		defaults.Branch = "main"
	}
	return &Adapter{runner: runner, defaults: defaults}
}

// CloneResult is the outcome of a clone operation.
type CloneResult struct {
	Success bool
	Output  string
	Error   string
}

// CommitResult is the outcome of a stage-and-commit operation.
// Error is set only when staging fails or the process cannot launch;
// the commit step itself surfaces stdout only.
type CommitResult struct {
	Success       bool
	CommitMessage string
	Output        string
	Error         string
}

// PushResult is the outcome of a push operation.
type PushResult struct {
	Success bool
	Output  string
	Error   string
}

// StatusResult is the outcome of a status operation.
// Status is the raw porcelain text; Clean is derived from it.
type StatusResult struct {
	Success bool
	Status  string
	Clean   bool
	Error   string
}

// BranchListResult is the outcome of a branch listing operation.
// Branches preserves git's own listing order.
type BranchListResult struct {
	Success  bool
	Branches []string
	Error    string
}

// CreateBranchResult is the outcome of a branch creation operation.
// CheckedOut echoes the request; the checkout step is not verified.
type CreateBranchResult struct {
	Success    bool
	Branch     string
	CheckedOut bool
	Error      string
}

// Clone clones repositoryURL. If destination is non-empty it is passed
// as the target directory; otherwise git derives one from the URL.
// The URL is passed through unvalidated; git's own validation governs failure.
func (a *Adapter) Clone(ctx context.Context, repositoryURL, destination string) CloneResult {
	args := []string{"clone", repositoryURL}
	if destination != "" {
		args = append(args, destination)
	}

	res, err := a.runner.Run(ctx, args...)
	if err != nil {
		return CloneResult{Error: err.Error()}
	}
	return CloneResult{
		Success: res.OK(),
		Output:  res.Stdout,
		Error:   res.Stderr,
	}
}

// Commit stages changes and commits them with the given message.
//
// With a non-empty files list, each path is staged individually in order;
// the first failed stage short-circuits the operation and is reported as
// a normalized failure (no commit is attempted, already-staged paths stay
// staged). With no files, the entire working tree is staged in one call.
func (a *Adapter) Commit(ctx context.Context, message string, files []string) CommitResult {
	if len(files) > 0 {
		for _, file := range files {
			res, err := a.runner.Run(ctx, "add", file)
			if err != nil {
				return CommitResult{Error: err.Error()}
			}
			if !res.OK() {
				return CommitResult{Error: stageFailure(file, res)}
			}
		}
	} else {
		res, err := a.runner.Run(ctx, "add", ".")
		if err != nil {
			return CommitResult{Error: err.Error()}
		}
		if !res.OK() {
			return CommitResult{Error: stageFailure(".", res)}
		}
	}

	res, err := a.runner.Run(ctx, "commit", "-m", message)
	if err != nil {
		return CommitResult{Error: err.Error()}
	}
	return CommitResult{
		Success:       res.OK(),
		CommitMessage: message,
		Output:        res.Stdout,
	}
}

// Push pushes the branch to the remote in a single attempt.
// Empty remote or branch fall back to the configured defaults.
func (a *Adapter) Push(ctx context.Context, remote, branch string) PushResult {
	if remote == "" {
		remote = a.defaults.Remote
	}
	if branch == "" {
		branch = a.defaults.Branch
	}

	res, err := a.runner.Run(ctx, "push", remote, branch)
	if err != nil {
		return PushResult{Error: err.Error()}
	}
	return PushResult{
		Success: res.OK(),
		Output:  res.Stdout,
		Error:   res.Stderr,
	}
}

// Status reports the working tree state in porcelain form.
// Clean is true when the trimmed porcelain output is empty.
func (a *Adapter) Status(ctx context.Context) StatusResult {
	res, err := a.runner.Run(ctx, "status", "--porcelain")
	if err != nil {
		return StatusResult{Error: err.Error()}
	}
	return StatusResult{
		Success: res.OK(),
		Status:  res.Stdout,
		Clean:   strings.TrimSpace(res.Stdout) == "",
	}
}

// BranchList lists all branches, local and remote-tracking, in git's
// own order. No sorting, no deduplication.
func (a *Adapter) BranchList(ctx context.Context) BranchListResult {
	res, err := a.runner.Run(ctx, "branch", "-a")
	if err != nil {
		return BranchListResult{Error: err.Error()}
	}
	return BranchListResult{
		Success:  res.OK(),
		Branches: parseBranches(res.Stdout),
		Error:    res.Stderr,
	}
}

// CreateBranch creates a branch and, when checkout is true and the
// creation succeeded, switches to it. The switch step is best-effort:
// its failure does not change the reported outcome, and CheckedOut
// reflects the request rather than a verified state.
func (a *Adapter) CreateBranch(ctx context.Context, name string, checkout bool) CreateBranchResult {
	res, err := a.runner.Run(ctx, "branch", name)
	if err != nil {
		return CreateBranchResult{Error: err.Error()}
	}

	if res.OK() && checkout {
		_, _ = a.runner.Run(ctx, "checkout", name)
	}

	out := CreateBranchResult{
		Success:    res.OK(),
		Branch:     name,
		CheckedOut: checkout,
	}
	if !res.OK() {
		out.Error = res.Stderr
	}
	return out
}

// parseBranches splits raw `git branch -a` output into branch names.
// Blank lines are dropped; the current-branch marker ("* ") is stripped
// so the checked-out branch is listed, not skipped.
func parseBranches(raw string) []string {
	lines := strings.Split(raw, "\n")
	branches := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		branches = append(branches, strings.TrimPrefix(line, "* "))
	}
	return branches
}

// stageFailure formats a staging failure message from the failed call.
func stageFailure(path string, res Result) string {
	msg := strings.TrimSpace(res.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(res.Stdout)
	}
	if msg == "" {
		return "staging " + path + " failed"
	}
	return "staging " + path + " failed: " + msg
}
