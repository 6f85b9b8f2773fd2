// Package main provides the entry point for the capstan CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	capstanmcp "github.com/seawall/capstan/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run capstan as a Model Context Protocol (MCP) server over stdio.

This exposes git operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "capstan": {
        "command": "capstan",
        "args": ["serve"]
      }
    }
  }

Available tools: git_clone, git_commit, git_push, git_status,
git_branch_list, git_create_branch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			adapter, err := newAdapter()
			if err != nil {
				return err
			}
			server := capstanmcp.NewServer(buildVersion(), adapter)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
