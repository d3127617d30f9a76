package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/termfolio/pkg/log"
)

type TelegramConfig struct {
	Token string `env:"TERMFOLIO_TELEGRAM_TOKEN,required,notEmpty"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}

func (c TelegramConfig) GetTelegramToken() string {
	return c.Token
}
