package command

import (
	"strings"

	"github.com/sandevgo/termfolio/internal/core"
)

const (
	canonicalHelp = "--help"
	legacyHelp    = "help"
)

// Registry maps command names to commands. It is filled once at startup
// and only read afterwards.
type Registry struct {
	commands map[string]core.Command
	// keys in registration order, aliases included
	keys []string
}

func New(commands []core.Command) *Registry {
	r := &Registry{
		commands: make(map[string]core.Command),
	}

	for _, cmd := range commands {
		r.Register(cmd)
	}
	return r
}

// Register adds cmd under its normalized name. Registering the canonical
// help entry also adds the legacy "help" key unless it is taken.
func (r *Registry) Register(cmd core.Command) {
	name := Normalize(cmd.Name())
	r.add(name, cmd)

	if name == canonicalHelp {
		if _, taken := r.commands[legacyHelp]; !taken {
			r.add(legacyHelp, cmd)
		}
	}
}

func (r *Registry) add(key string, cmd core.Command) {
	if _, exists := r.commands[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.commands[key] = cmd
}

// Lookup resolves a command by trimmed, lowercased name. A miss is a
// normal outcome, not an error.
func (r *Registry) Lookup(name string) (core.Command, bool) {
	cmd, ok := r.commands[Normalize(name)]
	return cmd, ok
}

func (r *Registry) Has(key string) bool {
	_, ok := r.commands[key]
	return ok
}

// ListCommands returns every distinct command in registration order.
func (r *Registry) ListCommands() []core.Command {
	res := make([]core.Command, 0, len(r.keys))
	seen := make(map[core.Command]bool, len(r.keys))
	for _, key := range r.keys {
		cmd := r.commands[key]
		if seen[cmd] {
			continue
		}
		seen[cmd] = true
		res = append(res, cmd)
	}
	return res
}

// Keys returns every lookup key, aliases included, in registration order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.keys...)
}

// KeysOf returns the keys resolving to cmd, the legacy help alias first.
func (r *Registry) KeysOf(cmd core.Command) []string {
	var keys []string
	for _, key := range r.keys {
		if r.commands[key] != cmd {
			continue
		}
		if key == legacyHelp {
			keys = append([]string{key}, keys...)
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
