package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/termfolio/internal/core"
	"github.com/sandevgo/termfolio/internal/service/terminal"
	"github.com/sandevgo/termfolio/pkg/log"
)

const footerHelp = "esc: leave input · ?: help · enter: type · ctrl+c: quit"

// reserved rows below the viewport: input row and footer
const chromeHeight = 2

type dispatchedMsg struct {
	err error
}

type model struct {
	ctx      context.Context
	session  *terminal.Session
	input    textinput.Model
	viewport viewport.Model
	busy     bool
	ready    bool
}

func newModel(ctx context.Context, session *terminal.Session) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(core.PromptMarker) + " "
	ti.CharLimit = 256
	ti.Focus()

	return model{
		ctx:      ctx,
		session:  session,
		input:    ti,
		viewport: viewport.New(80, 20),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.input.Width = max(msg.Width-4, 1)
		m.ready = true
		m.refresh()
		return m, nil

	case dispatchedMsg:
		m.busy = false
		if msg.err != nil && !errors.Is(msg.err, terminal.ErrBusy) {
			log.FromCtx(m.ctx).Error().Err(msg.err).Msg("dispatch failed")
		}
		m.refresh()
		m.input.SetValue(m.session.Gate().Value())
		var cmd tea.Cmd
		if m.session.Gate().Focused() {
			cmd = m.input.Focus()
		}
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateBlurred(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw := m.input.Value()
		if strings.TrimSpace(raw) == "" {
			m.input.SetValue("")
			return m, nil
		}
		m.busy = true
		m.input.Blur()
		return m, m.dispatch(func(ctx context.Context) error {
			return m.session.Execute(ctx, raw)
		})

	case "esc":
		m.input.Blur()
		m.session.Gate().Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.Gate().SetValue(m.input.Value())
	return m, cmd
}

func (m model) updateBlurred(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case core.HelpShortcut:
		m.busy = true
		return m, m.dispatch(func(ctx context.Context) error {
			_, err := m.session.Shortcut(ctx, core.HelpShortcut)
			return err
		})

	case "enter", "i":
		m.session.Gate().Focus()
		cmd := m.input.Focus()
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// dispatch runs fn off the update loop; the cosmetic delay blocks there.
func (m model) dispatch(fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return dispatchedMsg{err: fn(ctx)}
	}
}

func (m *model) refresh() {
	snap := m.session.Screen().Snapshot()
	m.viewport.SetContent(renderScreen(snap))
	if snap.Scroll == terminal.ScrollTop {
		m.viewport.GotoTop()
	} else {
		m.viewport.GotoBottom()
	}
}

func (m model) View() string {
	if !m.ready {
		return "starting terminal...\n"
	}

	input := ""
	if !m.busy && m.session.Gate().Enabled() {
		input = m.input.View()
	}
	return m.viewport.View() + "\n" + input + "\n" + footerStyle.Render(footerHelp)
}

func renderScreen(snap terminal.Snapshot) string {
	var b strings.Builder
	for _, el := range snap.Permanent {
		switch el.ID {
		case terminal.HeaderElementID:
			b.WriteString(headerStyle.Render(el.Text))
		default:
			b.WriteString(welcomeStyle.Render(el.Text))
		}
		b.WriteString("\n")
	}
	for _, line := range snap.Lines {
		if line.IsEcho {
			b.WriteString(promptStyle.Render(core.PromptMarker) + " ")
		}
		b.WriteString(line.Content)
		b.WriteString("\n")
	}
	return b.String()
}
