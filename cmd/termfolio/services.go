package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/termfolio/internal/config"
	"github.com/sandevgo/termfolio/internal/service/command"
	"github.com/sandevgo/termfolio/internal/service/terminal"
	"github.com/sandevgo/termfolio/internal/transport/telegram"
	"github.com/sandevgo/termfolio/internal/transport/web"
	"github.com/sandevgo/termfolio/pkg/log"
	"github.com/sandevgo/termfolio/pkg/srv"
)

// portfolio is what every surface shares: configuration and the command set.
type portfolio struct {
	app      *config.AppConfig
	profile  *config.ProfileConfig
	registry *command.Registry
}

func loadPortfolio(ctx context.Context) *portfolio {
	logger := log.FromCtx(ctx)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	app := config.NewAppConfig(ctx)
	profile := config.NewProfileConfig(ctx, app.GetRuntimePath())

	return &portfolio{
		app:      app,
		profile:  profile,
		registry: command.NewRegistry(profile),
	}
}

// newSession builds an interactive terminal showing the header and the
// welcome block.
func (p *portfolio) newSession() *terminal.Session {
	screen := terminal.NewScreen(terminal.PermanentElements(p.profile)...)
	return terminal.NewSession(p.registry, screen, terminal.WithDelay(p.app.GetDispatchDelay()))
}

func NewServices(ctx context.Context, p *portfolio) ([]srv.Service, error) {
	webCfg := config.NewWebConfig(ctx)
	store := terminal.NewStore(p.newSession, webCfg.GetSessionTTL())

	server, err := web.NewServer(ctx, webCfg, p.profile, p.registry, store)
	if err != nil {
		return nil, err
	}

	services := []srv.Service{store, server}

	if p.app.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, p.profile, p.registry)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
