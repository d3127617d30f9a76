package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/termfolio/internal/core"
	"github.com/sandevgo/termfolio/internal/service/terminal"
	"github.com/sandevgo/termfolio/pkg/conv"
	"github.com/sandevgo/termfolio/pkg/log"
	"github.com/sandevgo/termfolio/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const (
	baseContextKey = "base_context"
	startCommand   = "start"
)

// Bot answers portfolio commands in Telegram chats. Every message is
// dispatched on a fresh screen; only result lines are sent back.
type Bot struct {
	bot      *tele.Bot
	sender   *sender
	registry core.CmdRegistry
	welcome  string
}

func NewBot(
	ctx context.Context,
	cfg core.TelegramConfig,
	profile core.ProfileConfig,
	registry core.CmdRegistry,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.GetTelegramToken(),
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	// NewBot calls getMe; a rejected token is not worth retrying
	retryCfg := retry.NewDefaultConfig()
	retryCfg.Permanent = func(err error) bool {
		return errors.Is(err, tele.ErrUnauthorized) || errors.Is(err, tele.ErrNotFound)
	}

	var b *tele.Bot
	err := retry.NewRetrier(retryCfg).Do(ctx, func() error {
		var err error
		b, err = tele.NewBot(pref)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:      b,
		sender:   newSender(b),
		registry: registry,
		welcome:  welcomeHTML(profile),
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	input := commandInput(c.Text())
	if input == startCommand {
		return b.sender.sendHTML(ctx, c.Recipient(), b.welcome)
	}

	_ = c.Notify(tele.Typing)
	for _, reply := range Reply(ctx, b.registry, input) {
		if err := b.sender.sendHTML(ctx, c.Recipient(), reply); err != nil {
			logger.Error().Err(err).Msg("failed to send telegram reply")
			return err
		}
	}
	return nil
}

// Reply dispatches input on a throwaway screen and returns the result
// lines as Telegram HTML.
func Reply(ctx context.Context, registry core.CmdRegistry, input string) []string {
	session := terminal.NewSession(registry, terminal.NewScreen())
	if err := session.Execute(ctx, input); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("telegram dispatch failed")
		return nil
	}

	var replies []string
	for _, line := range session.Screen().Lines() {
		if line.IsEcho {
			continue
		}
		replies = append(replies, conv.TerminalHTMLToTelegram(line.HTML))
	}
	return replies
}

// commandInput turns "/about@portfolio_bot" into "about"; other text is
// passed through.
func commandInput(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return text
	}
	name := strings.Fields(text)[0]
	name, _, _ = strings.Cut(strings.TrimPrefix(name, "/"), "@")
	return name
}

func welcomeHTML(profile core.ProfileConfig) string {
	for _, el := range terminal.PermanentElements(profile) {
		if el.ID == terminal.WelcomeElementID {
			return conv.TerminalHTMLToTelegram(el.HTML)
		}
	}
	return ""
}
