package command

import (
	"context"

	"github.com/sandevgo/termfolio/internal/core"
)

type ClearCommand struct{}

func NewClearCommand() *ClearCommand {
	return &ClearCommand{}
}

func (c *ClearCommand) Name() string {
	return "clear"
}

func (c *ClearCommand) Description() string {
	return "Clear the terminal"
}

// Execute wipes the output and returns no text.
func (c *ClearCommand) Execute(ctx context.Context, out core.Output) (string, error) {
	out.Clear()
	return "", nil
}
