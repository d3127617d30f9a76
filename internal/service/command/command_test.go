package command

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandevgo/termfolio/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfile struct {
	dir string
}

func (p stubProfile) GetName() string        { return "Jubayer Hossen" }
func (p stubProfile) GetNickname() string    { return "Jubayer" }
func (p stubProfile) GetTagline() string     { return "A passionate developer focused on building cool web projects." }
func (p stubProfile) GetSkills() []string    { return []string{"JavaScript", "HTML", "CSS", "React", "Python"} }
func (p stubProfile) GetEmail() string       { return "your.email@example.com" }
func (p stubProfile) GetGitHubURL() string   { return "https://github.com/Jubayer-Hossen" }
func (p stubProfile) GetLinkedInURL() string { return "https://linkedin.com/in/your-profile" }
func (p stubProfile) GetProjects() []core.Project {
	return []core.Project{
		{Name: "Chess", URL: "https://github.com/Jubayer-Hossen/Chess"},
		{Name: "Side quest"},
	}
}
func (p stubProfile) GetSectionPath(section string) string {
	if p.dir == "" {
		return ""
	}
	return filepath.Join(p.dir, strings.ToUpper(section)+".md")
}

type recordingOutput struct {
	lines   []core.OutputLine
	cleared int
}

func (o *recordingOutput) Append(line core.OutputLine) { o.lines = append(o.lines, line) }
func (o *recordingOutput) Clear()                      { o.cleared++; o.lines = nil }

func TestRegistry_LookupNormalizes(t *testing.T) {
	r := NewRegistry(stubProfile{})

	for _, name := range []string{"about", "About", "  ABOUT  ", "\tabout\n"} {
		t.Run(name, func(t *testing.T) {
			cmd, ok := r.Lookup(name)
			require.True(t, ok)
			assert.Equal(t, "about", cmd.Name())
		})
	}
}

func TestRegistry_LookupMiss(t *testing.T) {
	r := NewRegistry(stubProfile{})

	for _, name := range []string{"", "abo", "about me", "ls", "--about", "helpme"} {
		_, ok := r.Lookup(name)
		assert.False(t, ok, "lookup %q", name)
	}
}

func TestRegistry_HelpAlias(t *testing.T) {
	r := NewRegistry(stubProfile{})

	assert.True(t, r.Has("help"))
	assert.True(t, r.Has("--help"))

	canonical, ok := r.Lookup("--help")
	require.True(t, ok)
	alias, ok := r.Lookup(" HELP ")
	require.True(t, ok)
	assert.Same(t, canonical, alias)

	assert.Equal(t, []string{"--help", "help", "about", "projects", "contact", "clear"}, r.Keys())
	assert.Len(t, r.ListCommands(), 5)
}

func TestRegistry_NoAliasWithoutCanonicalHelp(t *testing.T) {
	r := New([]core.Command{NewClearCommand()})

	_, ok := r.Lookup("help")
	assert.False(t, ok)
}

func TestRegistry_ExplicitHelpKeepsPriority(t *testing.T) {
	explicit := &SectionCommand{name: "help", render: func() string { return "custom" }}
	r := New([]core.Command{explicit})
	r.Register(NewHelpCommand(r))

	cmd, ok := r.Lookup("help")
	require.True(t, ok)
	assert.Same(t, explicit, cmd)
}

func TestHelpCommand(t *testing.T) {
	r := NewRegistry(stubProfile{})
	cmd, _ := r.Lookup("help")

	got, err := cmd.Execute(context.Background(), &recordingOutput{})
	require.NoError(t, err)

	want := "Available commands:\n" +
		"  help, --help  Show this help message\n" +
		"  about         About me\n" +
		"  projects      List my projects\n" +
		"  contact       Contact information\n" +
		"  clear         Clear the terminal"
	assert.Equal(t, want, got)
}

func TestSectionCommands(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{
			name: "about",
			expected: "Jubayer Hossen\n" +
				"A passionate developer focused on building cool web projects.\n" +
				"Skills: JavaScript, HTML, CSS, React, Python, and more.",
		},
		{
			name: "projects",
			expected: "Some of my projects:\n" +
				"- Chess: https://github.com/Jubayer-Hossen/Chess\n" +
				"- Side quest\n" +
				"- More on my GitHub!",
		},
		{
			name: "contact",
			expected: "You can reach me at:\n" +
				"Email: your.email@example.com\n" +
				"GitHub: https://github.com/Jubayer-Hossen\n" +
				"LinkedIn: https://linkedin.com/in/your-profile",
		},
	}

	r := NewRegistry(stubProfile{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := r.Lookup(tt.name)
			require.True(t, ok)

			out := &recordingOutput{}
			got, err := cmd.Execute(context.Background(), out)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Empty(t, out.lines)
		})
	}
}

func TestSectionCommand_MarkdownOverride(t *testing.T) {
	dir := t.TempDir()
	md := "# About\n\nI write Go services.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ABOUT.md"), []byte(md), 0644))

	r := NewRegistry(stubProfile{dir: dir})

	about, _ := r.Lookup("about")
	got, err := about.Execute(context.Background(), &recordingOutput{})
	require.NoError(t, err)
	assert.Contains(t, got, "I write Go services.")
	assert.NotContains(t, got, "Jubayer Hossen")

	// no override file: generated text
	contact, _ := r.Lookup("contact")
	got, err = contact.Execute(context.Background(), &recordingOutput{})
	require.NoError(t, err)
	assert.Contains(t, got, "You can reach me at:")
}

func TestSectionCommand_UnreadableOverride(t *testing.T) {
	dir := t.TempDir()
	// a directory where the file should be cannot be read as one
	require.NoError(t, os.Mkdir(filepath.Join(dir, "PROJECTS.md"), 0755))

	r := NewRegistry(stubProfile{dir: dir})
	projects, _ := r.Lookup("projects")

	_, err := projects.Execute(context.Background(), &recordingOutput{})
	assert.Error(t, err)
}

func TestClearCommand(t *testing.T) {
	out := &recordingOutput{lines: []core.OutputLine{{Content: "old"}}}

	got, err := NewClearCommand().Execute(context.Background(), out)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, out.cleared)
	assert.Empty(t, out.lines)
}
