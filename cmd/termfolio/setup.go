package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/termfolio/internal/config"
	"github.com/sandevgo/termfolio/internal/service/installer"
	"github.com/sandevgo/termfolio/pkg/log"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:          "setup",
	Short:        "Describe your portfolio in an interactive wizard",
	Long:         `Asks for the profile shown by the terminal and writes it to the .env file in the runtime directory.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), os.Stdout)
		defer flushLog()

		logger := log.FromCtx(ctx)
		runtimePath := config.GetRuntimePath()

		if _, err := installer.RunWizard(runtimePath); err != nil {
			return err
		}

		envPath := filepath.Join(runtimePath, ".env")
		if err := godotenv.Overload(envPath); err != nil {
			logger.Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
		}

		logger.Info().Msgf("configuration written to %s", envPath)
		logger.Info().Msg("Setup complete! Run 'termfolio serve' or 'termfolio tui'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
