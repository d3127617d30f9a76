package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sandevgo/termfolio/internal/config"
	"github.com/sandevgo/termfolio/internal/transport/tui"
	"github.com/spf13/cobra"
)

const tuiLogFile = "tui.log"

var tuiCmd = &cobra.Command{
	Use:          "tui",
	Short:        "Open the terminal locally",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// bubbletea owns the screen; debug logs go to a file
		out, closeOut, err := openTUILog()
		if err != nil {
			return err
		}
		defer closeOut()

		ctx, flushLog := setupLogger(cmd.Context(), out)
		defer flushLog()

		p := loadPortfolio(ctx)
		return tui.Run(ctx, p.newSession())
	},
}

func openTUILog() (io.Writer, func(), error) {
	if !debug && !config.IsDebug() {
		return io.Discard, func() {}, nil
	}

	dir := config.GetRuntimePath()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, tuiLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open tui log: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
