package main

import (
	"os"

	"github.com/sandevgo/termfolio/pkg/log"
	"github.com/sandevgo/termfolio/pkg/srv"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Serve the terminal over HTTP",
	Long:         `Starts the web terminal and, when enabled, the Telegram bot. Stops on SIGINT or SIGTERM.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), os.Stdout)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting termfolio")

		services, err := NewServices(ctx, loadPortfolio(ctx))
		if err != nil {
			return err
		}

		if err := srv.Run(ctx, services); err != nil {
			return err
		}

		logger.Info().Msg("termfolio has been shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
