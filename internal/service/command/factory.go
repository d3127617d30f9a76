package command

import (
	"github.com/sandevgo/termfolio/internal/core"
)

func NewCommands(profile core.ProfileConfig) []core.Command {
	return []core.Command{
		NewAboutCommand(profile),
		NewProjectsCommand(profile),
		NewContactCommand(profile),
		NewClearCommand(),
	}
}

// NewRegistry builds the portfolio command set with help listed first.
func NewRegistry(profile core.ProfileConfig) *Registry {
	r := New(nil)
	r.Register(NewHelpCommand(r))
	for _, cmd := range NewCommands(profile) {
		r.Register(cmd)
	}
	return r
}
