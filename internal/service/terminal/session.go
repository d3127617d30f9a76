package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/termfolio/internal/core"
	"github.com/sandevgo/termfolio/pkg/log"
)

var ErrBusy = errors.New("terminal: dispatch in progress")

const notFoundFormat = "Command not found: %s\nType '%s' to see available commands."

// Session is one terminal: a registry, the screen it renders into and the
// input gate. At most one dispatch per session runs at a time.
type Session struct {
	registry core.CmdRegistry
	screen   *Screen
	gate     *Gate
	delay    time.Duration
}

type Option func(*Session)

// WithDelay sets the cosmetic pause before input is re-enabled.
func WithDelay(d time.Duration) Option {
	return func(s *Session) {
		s.delay = d
	}
}

func NewSession(registry core.CmdRegistry, screen *Screen, opts ...Option) *Session {
	s := &Session{
		registry: registry,
		screen:   screen,
		gate:     NewGate(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Screen() *Screen {
	return s.screen
}

func (s *Session) Gate() *Gate {
	return s.gate
}

// Execute runs one dispatch: echo, lookup, render, pause, re-enable.
// Blank input is ignored. ErrBusy means another dispatch holds the gate.
func (s *Session) Execute(ctx context.Context, raw string) error {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return nil
	}

	if !s.gate.tryDisable() {
		return ErrBusy
	}

	s.dispatch(ctx, raw, name)

	// the only suspension point; always runs to completion
	time.Sleep(s.delay)

	s.gate.reset()
	return nil
}

// Shortcut dispatches help when key is the help shortcut and the input is
// not focused for typing. It reports whether the key was consumed.
func (s *Session) Shortcut(ctx context.Context, key string) (bool, error) {
	if key != core.HelpShortcut || s.gate.Focused() {
		return false, nil
	}
	return true, s.Execute(ctx, core.HelpCommand)
}

func (s *Session) dispatch(ctx context.Context, raw, name string) {
	logger := log.FromCtx(ctx)

	s.screen.Append(core.OutputLine{Content: raw, IsEcho: true})

	cmd, ok := s.registry.Lookup(name)
	if !ok {
		logger.Debug().Str("command", name).Msg("unknown command")
		s.screen.Append(core.OutputLine{Content: fmt.Sprintf(notFoundFormat, name, core.HelpCommand)})
		return
	}

	result, err := cmd.Execute(ctx, s.screen)
	if err != nil {
		logger.Error().Err(err).Str("command", name).Msg("command failed")
		result = fmt.Sprintf("Error: %v", err)
	}
	if result != "" {
		s.screen.Append(core.OutputLine{Content: result})
	}
	logger.Debug().Str("command", name).Msg("command dispatched")
}
