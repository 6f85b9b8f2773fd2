package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seawall/capstan/internal/git"
)

// --- Clone tool ---

// CloneInput is the input for the git_clone tool.
type CloneInput struct {
	RepositoryURL string `json:"repository_url"        jsonschema:"URL of the repository to clone"`
	Destination   string `json:"destination,omitempty" jsonschema:"target directory (git derives one from the URL when absent)"`
}

// CloneOutput is the output for the git_clone tool.
type CloneOutput struct {
	Success bool   `json:"success"         jsonschema:"whether the clone succeeded"`
	Output  string `json:"output"          jsonschema:"captured stdout"`
	Error   string `json:"error,omitempty" jsonschema:"captured stderr or failure message"`
}

func handleClone(adapter *git.Adapter) mcp.ToolHandlerFor[CloneInput, CloneOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CloneInput) (*mcp.CallToolResult, CloneOutput, error) {
		// The URL is passed through unvalidated; git's own validation
		// governs failure.
		res := adapter.Clone(ctx, input.RepositoryURL, input.Destination)
		return nil, CloneOutput{
			Success: res.Success,
			Output:  res.Output,
			Error:   res.Error,
		}, nil
	}
}

// --- Commit tool ---

// CommitInput is the input for the git_commit tool.
type CommitInput struct {
	Message string   `json:"message"         jsonschema:"commit message"`
	Files   []string `json:"files,omitempty" jsonschema:"paths to stage individually in order; stages everything when absent"`
}

// CommitOutput is the output for the git_commit tool.
type CommitOutput struct {
	Success       bool   `json:"success"                  jsonschema:"whether the commit succeeded"`
	CommitMessage string `json:"commit_message,omitempty" jsonschema:"the commit message as given"`
	Output        string `json:"output"                   jsonschema:"captured stdout of the commit"`
	Error         string `json:"error,omitempty"          jsonschema:"staging or launch failure message"`
}

func handleCommit(adapter *git.Adapter) mcp.ToolHandlerFor[CommitInput, CommitOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CommitInput) (*mcp.CallToolResult, CommitOutput, error) {
		res := adapter.Commit(ctx, input.Message, input.Files)
		return nil, CommitOutput{
			Success:       res.Success,
			CommitMessage: res.CommitMessage,
			Output:        res.Output,
			Error:         res.Error,
		}, nil
	}
}

// --- Push tool ---

// PushInput is the input for the git_push tool.
type PushInput struct {
	Remote string `json:"remote,omitempty" jsonschema:"remote to push to (default origin)"`
	Branch string `json:"branch,omitempty" jsonschema:"branch to push (default main)"`
}

// PushOutput is the output for the git_push tool.
type PushOutput struct {
	Success bool   `json:"success"         jsonschema:"whether the push succeeded"`
	Output  string `json:"output"          jsonschema:"captured stdout"`
	Error   string `json:"error,omitempty" jsonschema:"captured stderr or failure message"`
}

func handlePush(adapter *git.Adapter) mcp.ToolHandlerFor[PushInput, PushOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PushInput) (*mcp.CallToolResult, PushOutput, error) {
		res := adapter.Push(ctx, input.Remote, input.Branch)
		return nil, PushOutput{
			Success: res.Success,
			Output:  res.Output,
			Error:   res.Error,
		}, nil
	}
}

// --- Create branch tool ---

// CreateBranchInput is the input for the git_create_branch tool.
type CreateBranchInput struct {
	BranchName string `json:"branch_name"        jsonschema:"name of the branch to create"`
	Checkout   *bool  `json:"checkout,omitempty" jsonschema:"switch to the new branch after creating it (default true)"`
}

// CreateBranchOutput is the output for the git_create_branch tool.
type CreateBranchOutput struct {
	Success    bool   `json:"success"         jsonschema:"whether the branch was created"`
	Branch     string `json:"branch"          jsonschema:"the branch name as given"`
	CheckedOut bool   `json:"checked_out"     jsonschema:"whether checkout was requested (not verified)"`
	Error      string `json:"error,omitempty" jsonschema:"captured stderr or failure message"`
}

func handleCreateBranch(adapter *git.Adapter) mcp.ToolHandlerFor[CreateBranchInput, CreateBranchOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateBranchInput) (*mcp.CallToolResult, CreateBranchOutput, error) {
		checkout := true
		if input.Checkout != nil {
			checkout = *input.Checkout
		}

		res := adapter.CreateBranch(ctx, input.BranchName, checkout)
		return nil, CreateBranchOutput{
			Success:    res.Success,
			Branch:     res.Branch,
			CheckedOut: res.CheckedOut,
			Error:      res.Error,
		}, nil
	}
}
