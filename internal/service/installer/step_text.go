package installer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextStep asks for one free-form value. An empty answer keeps the
// configured default and writes nothing.
type TextStep struct {
	key      string
	prompt   string
	input    textinput.Model
	validate func(string) error
	err      error
}

func NewTextStep(key, prompt, placeholder string, validate func(string) error) *TextStep {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60
	ti.Placeholder = placeholder

	return &TextStep{
		key:      key,
		prompt:   prompt,
		input:    ti,
		validate: validate,
	}
}

func (s *TextStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TextStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := strings.TrimSpace(s.input.Value())
		if val == "" {
			return nil, nil
		}
		if s.validate != nil {
			if err := s.validate(val); err != nil {
				s.err = err
				return s, nil
			}
		}
		state.EnvVars[s.key] = val
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.err = nil
	return s, cmd
}

func (s *TextStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(s.prompt + ":\n\n")
	b.WriteString(s.input.View() + "\n\n")
	if s.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n")
	}
	b.WriteString("(press enter to confirm, leave empty to keep the default)\n")
	return b.String()
}

func profileSteps() []Step {
	return []Step{
		NewTextStep(keyName, "Your full name", "Jubayer Hossen", nil),
		NewTextStep(keyNickname, "Name used in the welcome message", "Jubayer", nil),
		NewTextStep(keyTagline, "One-line bio", "A passionate developer focused on building cool web projects.", nil),
		NewTextStep(keySkills, "Skills, comma separated", "JavaScript,HTML,CSS,React,Python", nil),
		NewTextStep(keyEmail, "Contact e-mail", "your.email@example.com", validateEmail),
		NewTextStep(keyGitHubURL, "GitHub profile URL", "https://github.com/you", validateURL),
		NewTextStep(keyLinkedInURL, "LinkedIn profile URL", "https://linkedin.com/in/you", validateURL),
		NewTextStep(keyProjects, "Projects as Name=URL, comma separated", "Chess=https://github.com/you/chess", validateProjects),
	}
}

func validateEmail(s string) error {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || !strings.Contains(domain, ".") {
		return errors.New("not an e-mail address")
	}
	return nil
}

func validateURL(s string) error {
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return errors.New("URL must start with http:// or https://")
	}
	return nil
}

func validateProjects(s string) error {
	for _, entry := range strings.Split(s, ",") {
		name, url, ok := strings.Cut(entry, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return fmt.Errorf("project %q is not in Name=URL form", strings.TrimSpace(entry))
		}
		if err := validateURL(strings.TrimSpace(url)); err != nil {
			return fmt.Errorf("project %q: %w", strings.TrimSpace(name), err)
		}
	}
	return nil
}
