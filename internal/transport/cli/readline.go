package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/termfolio/internal/core"
	"github.com/sandevgo/termfolio/internal/service/terminal"
	"github.com/sandevgo/termfolio/pkg/log"
)

const (
	historyFile = "input_history"
	exitCommand = "exit"
	clearScreen = "\033[H\033[2J"
)

// Registry is the command set offered for tab completion.
type Registry interface {
	core.CmdRegistry
	Keys() []string
}

// ReadLine is the line-mode terminal for dumb terminals and pipes: no
// alternate screen, one prompt per command.
type ReadLine struct {
	session *terminal.Session
	rl      *readline.Instance
	out     io.Writer
}

func NewReadLine(session *terminal.Session, registry Registry, runtimePath string) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(runtimePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	items := make([]readline.PrefixCompleterInterface, 0, len(registry.Keys()))
	for _, key := range registry.Keys() {
		items = append(items, readline.PcItem(key))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          core.PromptMarker + " ",
		HistoryFile:     filepath.Join(runtimePath, historyFile),
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       exitCommand,
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		session: session,
		rl:      rl,
		out:     rl.Stdout(),
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Debug().Msg("line-mode terminal started")

	r.printPermanent()

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if strings.TrimSpace(line) == exitCommand {
			return nil
		}
		if err := r.handle(ctx, line); err != nil {
			logger.Error().Err(err).Msg("dispatch failed")
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// handle dispatches line and prints what it added. A clear wipes the
// terminal and redraws the permanent blocks. Blank lines print nothing.
func (r *ReadLine) handle(ctx context.Context, line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	screen := r.session.Screen()
	before := len(screen.Lines())

	if err := r.session.Execute(ctx, line); err != nil {
		return err
	}

	snap := screen.Snapshot()
	lines := snap.Lines
	if snap.Scroll == terminal.ScrollTop {
		fmt.Fprint(r.out, clearScreen)
		r.printPermanent()
		before = 0
	}

	for _, l := range lines[before:] {
		// the prompt already echoed the input
		if l.IsEcho {
			continue
		}
		fmt.Fprintln(r.out, l.Content)
	}
	return nil
}

func (r *ReadLine) printPermanent() {
	for _, el := range r.session.Screen().Permanent() {
		fmt.Fprintln(r.out, el.Text)
	}
	fmt.Fprintln(r.out)
}
