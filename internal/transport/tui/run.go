package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/termfolio/internal/service/terminal"
)

// Run draws session in the alternate screen until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, session *terminal.Session) error {
	p := tea.NewProgram(newModel(ctx, session), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return nil
}
