package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
)

// REPL is the interactive read-dispatch-print loop.
type REPL struct {
	registry *Registry
	env      *Env
	in       *bufio.Scanner
	out      io.Writer
	stale    atomic.Bool
}

// NewREPL wires a registry to an input and output stream. The returned
// REPL installs itself as the env's prompter so handlers can ask follow-up
// questions on the same streams.
func NewREPL(registry *Registry, env *Env, in io.Reader, out io.Writer) *REPL {
	r := &REPL{
		registry: registry,
		env:      env,
		in:       bufio.NewScanner(in),
		out:      out,
	}
	env.Prompter = r
	return r
}

// Prompt implements Prompter.
func (r *REPL) Prompt(label string) (string, error) {
	fmt.Fprintf(r.out, "%s: ", label)
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.in.Text(), nil
}

// Say implements Prompter.
func (r *REPL) Say(msg string) {
	fmt.Fprintln(r.out, msg)
}

// MarkStale requests a dataset reload before the next command. Safe to call
// from the watch goroutine.
func (r *REPL) MarkStale() {
	r.stale.Store(true)
}

// Run reads commands until exit/close or EOF. Dispatch errors are printed
// and the loop continues; only context cancellation and input errors stop
// it early.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Welcome to the assistant bot!")
	fmt.Fprintln(r.out, "Type 'help' to see available commands. Type 'exit' or 'close' to quit.")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line, err := r.Prompt("Enter a command")
		if err == io.EOF {
			fmt.Fprintln(r.out, Success("\nGood bye!"))
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "exit", "close":
			fmt.Fprintln(r.out, Success("Good bye!"))
			return nil
		}

		if r.stale.Swap(false) {
			if err := r.env.Svc.Reload(ctx); err != nil {
				fmt.Fprintln(r.out, Failure(err.Error()))
			} else {
				fmt.Fprintln(r.out, "Data files changed on disk; reloaded.")
			}
		}

		result, err := r.registry.Dispatch(ctx, r.env, line)
		if err != nil {
			fmt.Fprintln(r.out, Failure(err.Error()))
			continue
		}
		if result != "" {
			fmt.Fprintln(r.out, result)
		}
	}
}
