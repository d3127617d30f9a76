package core

import "context"

// Output is the container a command may write to besides its returned text.
type Output interface {
	Append(line OutputLine)
	Clear()
}

type CmdRegistry interface {
	Lookup(name string) (Command, bool)
	ListCommands() []Command
}

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, out Output) (string, error)
}
