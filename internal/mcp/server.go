// Package mcp provides a Model Context Protocol server for capstan.
// It exposes git operations as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seawall/capstan/internal/git"
)

// NewServer creates an MCP server with all capstan tools registered.
func NewServer(version string, adapter *git.Adapter) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "capstan",
		Version: version,
	}, nil)
	registerTools(server, adapter)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only repository tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// localWriteAnnotations returns annotations for tools that mutate only the
// local repository (additive, not destructive).
func localWriteAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// remoteWriteAnnotations returns annotations for tools that reach a remote.
func remoteWriteAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all capstan tools to the server.
func registerTools(server *mcp.Server, adapter *git.Adapter) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "git_clone",
		Description: "Clone a git repository. Takes a repository URL and an optional destination directory.",
		Annotations: remoteWriteAnnotations(),
	}, handleClone(adapter))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "git_commit",
		Description: "Stage changes and commit them. With files, stages each path in order (fail-fast); without, stages the entire working tree.",
		Annotations: localWriteAnnotations(),
	}, handleCommit(adapter))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "git_push",
		Description: "Push commits to a remote branch. Remote defaults to origin and branch to main. Single attempt, no retry.",
		Annotations: remoteWriteAnnotations(),
	}, handlePush(adapter))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "git_status",
		Description: "Get repository status in porcelain form, with a derived clean flag for an unchanged working tree.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(adapter))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "git_branch_list",
		Description: "List all branches, local and remote-tracking, in git's own order.",
		Annotations: readOnlyAnnotations(),
	}, handleBranchList(adapter))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "git_create_branch",
		Description: "Create a new branch and optionally switch to it (checkout defaults to true).",
		Annotations: localWriteAnnotations(),
	}, handleCreateBranch(adapter))
}
