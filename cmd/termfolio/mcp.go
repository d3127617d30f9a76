package main

import (
	"os"

	"github.com/sandevgo/termfolio/internal/transport/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:          "mcp",
	Short:        "Serve the portfolio commands as an MCP tool over stdio",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol
		ctx, flushLog := setupLogger(cmd.Context(), os.Stderr)
		defer flushLog()

		p := loadPortfolio(ctx)
		return mcp.NewServer(p.registry).Serve(ctx, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
