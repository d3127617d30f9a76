package terminal

import (
	"testing"

	"github.com/sandevgo/termfolio/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestGate(t *testing.T) {
	g := NewGate()
	assert.Equal(t, core.InputState{Enabled: true, Focused: true}, g.State())

	g.SetValue("abo")
	assert.Equal(t, "abo", g.Value())

	g.SetEnabled(false)
	assert.False(t, g.Enabled())
	assert.False(t, g.Focused())

	// a disabled field neither takes focus nor input
	g.Focus()
	g.SetValue("ignored")
	assert.False(t, g.Focused())
	assert.Equal(t, "abo", g.Value())

	g.SetEnabled(true)
	assert.True(t, g.Focused())

	g.Blur()
	assert.False(t, g.Focused())
	assert.True(t, g.Enabled())
}

func TestGate_TryDisable(t *testing.T) {
	g := NewGate()

	assert.True(t, g.tryDisable())
	assert.False(t, g.tryDisable())

	g.SetValue("ignored")
	g.reset()
	assert.Equal(t, core.InputState{Enabled: true, Focused: true}, g.State())
	assert.True(t, g.tryDisable())
}
