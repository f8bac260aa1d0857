package cli

import (
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/earcraft/earcraft/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the EarCraft MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start EarCraft MCP server (stdio)",
		Long:  "Start the EarCraft MCP server using stdio transport. This lets AI practice assistants grade submissions, inspect progress and query the challenge catalog.",
		RunE: func(cmd *cobra.Command, args []string) error {
			packDir, err := packDirFrom(cmd)
			if err != nil {
				return err
			}
			dataDir, err := dataDirFrom(cmd)
			if err != nil {
				return err
			}
			s, closeServer, err := mcpadapter.NewEarCraftMCPServer(packDir, filepath.Join(dataDir, "progress.db"))
			if err != nil {
				return err
			}
			defer closeServer()
			return server.ServeStdio(s)
		},
	}
}
