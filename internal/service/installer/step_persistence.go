package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

const envFileName = ".env"

// SaveEnvStep merges the collected values into <runtime>/.env
type SaveEnvStep struct {
	runtimePath string
	err         error
	saved       bool
}

func NewSaveEnvStep(runtimePath string) Step {
	return &SaveEnvStep{runtimePath: runtimePath}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}
	if s.err != nil {
		return s, nil
	}

	if err := SaveEnv(s.runtimePath, state.EnvVars); err != nil {
		s.err = err
		return s, nil
	}

	s.saved = true
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}

// SaveEnv writes vars into runtimePath/.env. Keys already in the file and
// not in vars are kept.
func SaveEnv(runtimePath string, vars map[string]string) error {
	if err := os.MkdirAll(runtimePath, 0o755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	envPath := filepath.Join(runtimePath, envFileName)

	merged, err := godotenv.Read(envPath)
	if errors.Is(err, fs.ErrNotExist) {
		merged = make(map[string]string)
	} else if err != nil {
		return fmt.Errorf("failed to read %s: %w", envPath, err)
	}
	maps.Copy(merged, vars)

	content, err := godotenv.Marshal(merged)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", envPath, err)
	}

	// the file may hold the bot token; it is never readable by others
	f, err := os.OpenFile(envPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", envPath, err)
	}
	defer f.Close()

	if err := f.Chmod(0o600); err != nil {
		return fmt.Errorf("failed to restrict %s: %w", envPath, err)
	}
	if _, err := f.WriteString(content + "\n"); err != nil {
		return fmt.Errorf("failed to write %s: %w", envPath, err)
	}
	return f.Close()
}
