package dc

import (
	"fmt"
	"regexp"

	"github.com/cockroachdb/apd/v3"
)

// Handler implements a command: cmd is the text matched by the command's
// pattern, st is the stack to operate on, and ctx is the arithmetic context
// of the current run.
type Handler func(cmd string, st *Stack, ctx *apd.Context) error

type command struct {
	pattern *regexp.Regexp
	handler Handler
}

// Registry is an ordered table of command patterns. When parsing, patterns
// are tried in registration order and the first one that matches wins, so an
// earlier pattern shadows any later one that would match the same text.
type Registry struct {
	commands []command
}

// Register appends a command to the registry. The pattern is a regular
// expression that is matched only at the current parse offset.
func (reg *Registry) Register(pattern string, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("no handler given for pattern %q", pattern)
	}
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return fmt.Errorf("invalid command pattern: %w", err)
	}
	reg.commands = append(reg.commands, command{re, handler})
	return nil
}

// MustRegister is like Register, but panics on error.
func (reg *Registry) MustRegister(pattern string, handler Handler) {
	if err := reg.Register(pattern, handler); err != nil {
		panic(err)
	}
}

// Len returns the number of registered commands.
func (reg *Registry) Len() int { return len(reg.commands) }

// Clone returns a copy of reg that may be extended independently.
func (reg *Registry) Clone() *Registry {
	return &Registry{commands: append([]command(nil), reg.commands...)}
}

// match finds the first command whose pattern matches a non-empty prefix of
// text, returning the length of that prefix.
func (reg *Registry) match(text string) (int, Handler) {
	for _, cmd := range reg.commands {
		if loc := cmd.pattern.FindStringIndex(text); loc != nil && loc[1] > 0 {
			return loc[1], cmd.handler
		}
	}
	return 0, nil
}
