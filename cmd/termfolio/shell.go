package main

import (
	"github.com/sandevgo/termfolio/internal/transport/cli"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:          "shell",
	Short:        "Open the terminal in line mode (no full-screen UI)",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, closeOut, err := openTUILog()
		if err != nil {
			return err
		}
		defer closeOut()

		ctx, flushLog := setupLogger(cmd.Context(), out)
		defer flushLog()

		p := loadPortfolio(ctx)
		rl, err := cli.NewReadLine(p.newSession(), p.registry, p.app.GetRuntimePath())
		if err != nil {
			return err
		}
		defer func() { _ = rl.Shutdown(ctx) }()

		return rl.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
