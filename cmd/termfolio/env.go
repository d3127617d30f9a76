package main

import (
	"fmt"
	"os"

	"github.com/sandevgo/termfolio/internal/config"
	"github.com/sandevgo/termfolio/pkg/env"
	"github.com/spf13/cobra"
)

var showSecrets bool

var envCmd = &cobra.Command{
	Use:          "env",
	Short:        "Print the effective configuration in .env form",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), os.Stderr)
		defer flushLog()

		p := loadPortfolio(ctx)
		configs := []any{p.app, p.profile, config.NewWebConfig(ctx)}
		if showSecrets && p.app.IsTelegramSelected() {
			configs = append(configs, config.NewTelegramConfig(ctx))
		}

		for _, c := range configs {
			out, err := env.MarshalEnv(c)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

func init() {
	envCmd.Flags().BoolVar(&showSecrets, "secrets", false, "include the Telegram token")
	rootCmd.AddCommand(envCmd)
}
