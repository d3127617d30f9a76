package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep fills derived values
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	finalize(state)
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}

func finalize(state *InstallState) {
	// A bot without a token cannot start
	if state.EnvVars[keyTelegramToken] == "" {
		state.EnvVars[keyEnableTelegram] = "false"
	}

	if state.EnvVars[keyDebug] == "" {
		state.EnvVars[keyDebug] = "0"
	}
}
