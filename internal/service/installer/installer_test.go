package installer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTextStep(t *testing.T) {
	state := NewInstallState()
	step := NewTextStep(keyEmail, "Contact e-mail", "", validateEmail)

	next, _ := step.Update(typeText("nope"), state, 80, 24)
	require.Equal(t, step, next)

	next, _ = step.Update(enter, state, 80, 24)
	require.Equal(t, step, next, "invalid value keeps the step")
	assert.Contains(t, step.View(state), "not an e-mail address")
	assert.Empty(t, state.EnvVars)

	step.input.SetValue("me@example.com")
	next, _ = step.Update(enter, state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, "me@example.com", state.EnvVars[keyEmail])
}

func TestTextStep_EmptyKeepsDefault(t *testing.T) {
	state := NewInstallState()
	step := NewTextStep(keyName, "Your full name", "Jubayer Hossen", nil)

	next, _ := step.Update(enter, state, 80, 24)
	assert.Nil(t, next)
	assert.NotContains(t, state.EnvVars, keyName)
}

func TestValidateProjects(t *testing.T) {
	assert.NoError(t, validateProjects("Chess=https://github.com/a/chess, Flappy=https://github.com/a/flappy"))
	assert.Error(t, validateProjects("Chess"))
	assert.Error(t, validateProjects("=https://github.com/a/chess"))
	assert.Error(t, validateProjects("Chess=github.com/a/chess"))
}

func TestTelegramTokenStep_SkippedWithoutTelegram(t *testing.T) {
	state := NewInstallState()
	state.EnvVars[keyEnableTelegram] = "false"

	next, _ := NewTelegramTokenStep().Update(nextMsg{}, state, 80, 24)
	assert.Nil(t, next)
}

func TestTelegramTokenStep_RequiresToken(t *testing.T) {
	state := NewInstallState()
	state.EnvVars[keyEnableTelegram] = "true"
	step := NewTelegramTokenStep()

	next, _ := step.Update(enter, state, 80, 24)
	require.Equal(t, step, next)

	next, _ = step.Update(typeText("123:abc"), state, 80, 24)
	require.Equal(t, step, next)
	next, _ = step.Update(enter, state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, "123:abc", state.EnvVars[keyTelegramToken])
}

func TestFinalize(t *testing.T) {
	state := NewInstallState()
	state.EnvVars[keyEnableTelegram] = "true"

	finalize(state)
	assert.Equal(t, "false", state.EnvVars[keyEnableTelegram])
	assert.Equal(t, "0", state.EnvVars[keyDebug])
}

func TestSaveEnv_MergesExisting(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runtime")
	require.NoError(t, SaveEnv(dir, map[string]string{keyName: "Old Name", keyEmail: "old@example.com"}))
	require.NoError(t, SaveEnv(dir, map[string]string{keyName: "Ada Lovelace"}))

	envPath := filepath.Join(dir, envFileName)
	got, err := godotenv.Read(envPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{keyName: "Ada Lovelace", keyEmail: "old@example.com"}, got)

	info, err := os.Stat(envPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSaveEnv_RestrictsExistingFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, envFileName)
	require.NoError(t, os.WriteFile(envPath, []byte("TERMFOLIO_DEBUG=1\n"), 0o644))

	require.NoError(t, SaveEnv(dir, map[string]string{keyTelegramToken: "123:abc"}))

	info, err := os.Stat(envPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := godotenv.Read(envPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"TERMFOLIO_DEBUG": "1", keyTelegramToken: "123:abc"}, got)
}

func TestWizard_FullRun(t *testing.T) {
	dir := t.TempDir()
	var m tea.Model = initialModel(dir)

	// accept every profile default
	for range profileSteps() {
		m, _ = m.Update(enter)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(enter) // web + telegram
	m, _ = m.Update(typeText("123:abc"))
	m, _ = m.Update(enter)
	m, _ = m.Update(nextMsg{}) // finalization
	m, _ = m.Update(nextMsg{}) // save

	final := m.(model)
	assert.Equal(t, len(final.steps), final.currentStep)
	assert.Equal(t, "Configuration complete!\n", final.View())

	got, err := godotenv.Read(filepath.Join(dir, envFileName))
	require.NoError(t, err)
	assert.Equal(t, "true", got[keyEnableTelegram])
	assert.Equal(t, "123:abc", got[keyTelegramToken])
	assert.NotContains(t, got, keyName)
}

func TestWizard_CtrlCCancels(t *testing.T) {
	m, cmd := initialModel(t.TempDir()).Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, m.(model).quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, "Setup cancelled.\n", m.View())
}
