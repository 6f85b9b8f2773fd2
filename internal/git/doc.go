// Package git provides Git operations via exec for the capstan CLI and MCP server.
//
// This package wraps git commands by shelling out to the git executable and
// capturing exit code, stdout, and stderr as a single Result envelope. A
// non-zero exit is an expected outcome carried in the Result; only a failure
// to launch the process at all surfaces as a Go error.
//
// # Execution Primitive
//
// Every operation is built on one narrow primitive, the Runner:
//
//	res, err := runner.Run(ctx, "status", "--porcelain")
//
// The default Runner (NewRunner) invokes the configured git binary with the
// inherited working directory. Capture is the package-level convenience:
//
//	res, err := git.Capture(ctx, "branch", "-a")
//
// # Operation Adapter
//
// The Adapter translates the six supported operations into invocations and
// normalizes outcomes into per-operation envelopes:
//
//	adapter := git.NewAdapter(git.NewRunner("git"), git.Defaults{})
//	out := adapter.Status(ctx)     // StatusResult{Success, Status, Clean}
//	out := adapter.BranchList(ctx) // BranchListResult{Success, Branches}
//
// Adapter methods never return errors: launch failures are folded into the
// envelope as Success=false with a message, so every call yields exactly one
// well-formed result.
package git
