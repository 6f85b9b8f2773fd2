package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seawall/capstan/internal/git"
)

// Every tool returns a well-formed output value with a boolean success
// field; failures (non-zero exits, launch errors) are data, not protocol
// errors, so no call leaves the agent without a result.

// --- Status tool ---

// StatusInput is the input for the git_status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the git_status tool.
type StatusOutput struct {
	Success bool   `json:"success"         jsonschema:"whether git status exited cleanly"`
	Status  string `json:"status"          jsonschema:"raw porcelain status output"`
	Clean   bool   `json:"clean"           jsonschema:"true when the working tree has no changes"`
	Error   string `json:"error,omitempty" jsonschema:"failure message when the command could not run"`
}

func handleStatus(adapter *git.Adapter) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		res := adapter.Status(ctx)
		return nil, StatusOutput{
			Success: res.Success,
			Status:  res.Status,
			Clean:   res.Clean,
			Error:   res.Error,
		}, nil
	}
}

// --- Branch list tool ---

// BranchListInput is the input for the git_branch_list tool (no parameters needed).
type BranchListInput struct{}

// BranchListOutput is the output for the git_branch_list tool.
type BranchListOutput struct {
	Success  bool     `json:"success"            jsonschema:"whether git branch exited cleanly"`
	Branches []string `json:"branches,omitempty" jsonschema:"branch names in git's listing order"`
	Error    string   `json:"error,omitempty"    jsonschema:"failure message when the command could not run"`
}

func handleBranchList(adapter *git.Adapter) mcp.ToolHandlerFor[BranchListInput, BranchListOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ BranchListInput) (*mcp.CallToolResult, BranchListOutput, error) {
		res := adapter.BranchList(ctx)
		return nil, BranchListOutput{
			Success:  res.Success,
			Branches: res.Branches,
			Error:    res.Error,
		}, nil
	}
}
