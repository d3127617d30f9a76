package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/termfolio/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"TERMFOLIO_RUNTIME_PATH" envDefault:".termfolio"`

	// Cosmetic pause between rendering a result and re-enabling input
	DispatchDelay time.Duration `env:"TERMFOLIO_DISPATCH_DELAY" envDefault:"250ms"`

	// Transport Flags
	EnableTelegram bool `env:"TERMFOLIO_ENABLE_TELEGRAM" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDispatchDelay() time.Duration {
	return c.DispatchDelay
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}
