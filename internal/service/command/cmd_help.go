package command

import (
	"context"
	"strings"

	"github.com/sandevgo/termfolio/internal/core"
)

type HelpCommand struct {
	registry  *Registry
	formatter *ResponseFormatter
}

func NewHelpCommand(registry *Registry) *HelpCommand {
	return &HelpCommand{
		registry:  registry,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return canonicalHelp
}

func (c *HelpCommand) Description() string {
	return "Show this help message"
}

func (c *HelpCommand) Execute(ctx context.Context, out core.Output) (string, error) {
	commands := c.registry.ListCommands()
	rows := make([][2]string, 0, len(commands))
	for _, cmd := range commands {
		rows = append(rows, [2]string{
			strings.Join(c.registry.KeysOf(cmd), ", "),
			cmd.Description(),
		})
	}

	return c.formatter.Combine(
		c.formatter.Title("Available commands"),
		c.formatter.Rows(rows),
	), nil
}
