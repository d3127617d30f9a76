package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/termfolio/pkg/log"
)

type WebConfig struct {
	ListenAddr string `env:"TERMFOLIO_WEB_ADDR" envDefault:":8080"`
	// Sessions idle longer than this are evicted
	SessionTTL time.Duration `env:"TERMFOLIO_SESSION_TTL" envDefault:"30m"`
}

func NewWebConfig(ctx context.Context) *WebConfig {
	c := &WebConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Web config")
	}
	return c
}

func (c WebConfig) GetListenAddr() string {
	return c.ListenAddr
}

func (c WebConfig) GetSessionTTL() time.Duration {
	return c.SessionTTL
}
