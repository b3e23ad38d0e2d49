// Package command implements the assistant's command dispatcher: a registry
// mapping command names to handlers, the argument parser, and the
// interactive loop driving both.
package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/andriiko/attache/pkg/assistant"
)

// Handler executes one command against the loaded dataset and returns a
// human-readable result line (or block) for the terminal.
type Handler func(ctx context.Context, env *Env, args []string) (string, error)

// Env is what handlers get to work with. Prompter is nil when running
// non-interactively, in which case handlers that would ask a follow-up
// question fail with instructions instead.
type Env struct {
	Svc      *assistant.Service
	Prompter Prompter
	// BirthdayDays is the window used by 'birthdays' without an argument.
	BirthdayDays int
}

// Prompter asks the user a follow-up question and returns the answer line.
// Say prints an interim message, for wizard steps that retry on bad input.
type Prompter interface {
	Prompt(label string) (string, error)
	Say(msg string)
}

// Command describes a registered command. Mutating commands trigger a
// dataset snapshot after a successful run.
type Command struct {
	Name     string
	Usage    string
	Desc     string
	Example  string
	Mutating bool
	Run      Handler
}

// Registry maps command names to commands, preserving registration order
// for help output.
type Registry struct {
	commands map[string]*Command
	order    []string
}

// NewRegistry builds the full command set.
func NewRegistry() *Registry {
	r := &Registry{commands: make(map[string]*Command)}
	r.registerContactCommands()
	r.registerNoteCommands()
	r.register(&Command{
		Name:    "help",
		Usage:   "help [command]",
		Desc:    "Show help for all commands, or detailed help for one.",
		Example: "help add",
		Run:     r.runHelp,
	})
	return r
}

func (r *Registry) register(c *Command) {
	r.commands[c.Name] = c
	r.order = append(r.order, c.Name)
}

// Get returns a command by name.
func (r *Registry) Get(name string) (*Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// Dispatch parses an input line, runs the matching handler, and snapshots
// the dataset after a successful mutating command. A failed handler never
// saves.
func (r *Registry) Dispatch(ctx context.Context, env *Env, line string) (string, error) {
	return r.DispatchArgs(ctx, env, SplitArgs(line))
}

// DispatchArgs is Dispatch for callers that already hold split arguments,
// such as the exec subcommand receiving them from the shell. Arguments are
// taken verbatim, with no quote processing.
func (r *Registry) DispatchArgs(ctx context.Context, env *Env, fields []string) (string, error) {
	if len(fields) == 0 {
		return "", nil
	}

	name := strings.ToLower(fields[0])
	cmd, ok := r.commands[name]
	if !ok {
		return "", fmt.Errorf("invalid command %q: type 'help' to see available commands", name)
	}

	result, err := cmd.Run(ctx, env, fields[1:])
	if err != nil {
		return "", err
	}

	if cmd.Mutating {
		if err := env.Svc.Commit(ctx); err != nil {
			return "", err
		}
	}
	return result, nil
}

// SplitArgs splits an input line into fields. Single or double quotes group
// words into one argument, so note text can carry spaces:
//
//	add-note homework 'Do it today' #todo
func SplitArgs(line string) []string {
	var fields []string
	var current strings.Builder
	var quote rune
	inField := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inField = true
		case r == ' ' || r == '\t':
			if inField {
				fields = append(fields, current.String())
				current.Reset()
				inField = false
			}
		default:
			current.WriteRune(r)
			inField = true
		}
	}
	if inField {
		fields = append(fields, current.String())
	}
	return fields
}

// wantArgs enforces an exact argument count.
func wantArgs(args []string, n int, usage string) error {
	if len(args) < n {
		return fmt.Errorf("not enough arguments. Expected: %s", usage)
	}
	if len(args) > n {
		return fmt.Errorf("too many arguments. Expected: %s", usage)
	}
	return nil
}
