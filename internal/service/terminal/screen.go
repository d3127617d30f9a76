package terminal

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/termfolio/internal/core"
	"github.com/sandevgo/termfolio/pkg/conv"
)

type Scroll string

const (
	ScrollTop    Scroll = "top"
	ScrollBottom Scroll = "bottom"
)

const (
	HeaderElementID  = "header"
	WelcomeElementID = "welcome"
)

var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 2)

// Element is a permanent block of the screen that Clear never removes.
type Element struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	HTML string `json:"html"`
}

func NewElement(id, text string) Element {
	return Element{ID: id, Text: text, HTML: conv.TextToTerminalHTML(text)}
}

// PermanentElements returns the header art and the welcome block.
func PermanentElements(profile core.ProfileConfig) []Element {
	banner := bannerStyle.Render(fmt.Sprintf("%s · terminal portfolio", profile.GetName()))
	welcome := fmt.Sprintf("Welcome to %s's Terminal Portfolio!\nType '%s' to get started.",
		profile.GetNickname(), core.HelpCommand)

	return []Element{
		NewElement(HeaderElementID, banner),
		NewElement(WelcomeElementID, welcome),
	}
}

// Line is an appended output line with its safe HTML rendition.
type Line struct {
	core.OutputLine
	HTML string `json:"html"`
}

type Snapshot struct {
	Permanent []Element `json:"permanent"`
	Lines     []Line    `json:"lines"`
	Scroll    Scroll    `json:"scroll"`
}

// Screen is the output container: permanent elements followed by
// appended lines.
type Screen struct {
	mu        sync.RWMutex
	permanent []Element
	lines     []Line
	scroll    Scroll
}

func NewScreen(permanent ...Element) *Screen {
	return &Screen{
		permanent: permanent,
		scroll:    ScrollTop,
	}
}

// Append renders line and scrolls to it.
func (s *Screen) Append(line core.OutputLine) {
	rendered := Line{OutputLine: line}
	if line.IsEcho {
		rendered.HTML = conv.EchoToTerminalHTML(line.Content)
	} else {
		rendered.HTML = conv.TextToTerminalHTML(line.Content)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, rendered)
	s.scroll = ScrollBottom
}

// Clear drops every appended line and scrolls back to the top.
func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.scroll = ScrollTop
}

func (s *Screen) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Line(nil), s.lines...)
}

func (s *Screen) Permanent() []Element {
	return append([]Element(nil), s.permanent...)
}

func (s *Screen) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Permanent: append([]Element(nil), s.permanent...),
		Lines:     append([]Line{}, s.lines...),
		Scroll:    s.scroll,
	}
}
