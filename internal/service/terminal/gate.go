package terminal

import (
	"sync"

	"github.com/sandevgo/termfolio/internal/core"
)

// Gate owns the session's single InputState. A disabled input is neither
// interactive nor focused.
type Gate struct {
	mu    sync.Mutex
	state core.InputState
}

func NewGate() *Gate {
	return &Gate{
		state: core.InputState{Enabled: true, Focused: true},
	}
}

// SetEnabled shows, enables and focuses the input, or hides and disables it.
func (g *Gate) SetEnabled(flag bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state.Enabled = flag
	g.state.Focused = flag
}

// tryDisable disables the input unless it already is. It reports whether
// the caller now owns the dispatch.
func (g *Gate) tryDisable() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.state.Enabled {
		return false
	}
	g.state.Enabled = false
	g.state.Focused = false
	return true
}

// reset empties the field and hands it back to the user.
func (g *Gate) reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = core.InputState{Enabled: true, Focused: true}
}

func (g *Gate) Focus() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state.Enabled {
		g.state.Focused = true
	}
}

func (g *Gate) Blur() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state.Focused = false
}

func (g *Gate) SetValue(value string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state.Enabled {
		g.state.Value = value
	}
}

func (g *Gate) State() core.InputState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gate) Enabled() bool {
	return g.State().Enabled
}

func (g *Gate) Focused() bool {
	return g.State().Focused
}

func (g *Gate) Value() string {
	return g.State().Value
}
