package command_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriiko/attache/internal/command"
)

func runREPL(t *testing.T, env *command.Env, input string) string {
	t.Helper()
	var out bytes.Buffer
	repl := command.NewREPL(command.NewRegistry(), env, strings.NewReader(input), &out)
	require.NoError(t, repl.Run(context.Background()))
	return out.String()
}

func TestREPLSession(t *testing.T) {
	env, _ := setupEnv(t)

	out := runREPL(t, env, "add John 0501234567\nphone John\nexit\n")

	assert.Contains(t, out, "Welcome to the assistant bot!")
	assert.Contains(t, out, "Contact added.")
	assert.Contains(t, out, "John: 0501234567")
	assert.Contains(t, out, "Good bye!")
}

func TestREPLInvalidCommandKeepsRunning(t *testing.T) {
	env, _ := setupEnv(t)

	out := runREPL(t, env, "bogus\nall\nclose\n")

	assert.Contains(t, out, "invalid command")
	assert.Contains(t, out, "No contacts saved.")
	assert.Contains(t, out, "Good bye!")
}

func TestREPLBlankLinesIgnored(t *testing.T) {
	env, _ := setupEnv(t)

	out := runREPL(t, env, "\n\nexit\n")
	assert.Contains(t, out, "Good bye!")
}

func TestREPLEndsOnEOF(t *testing.T) {
	env, _ := setupEnv(t)

	// No exit command; the input just ends.
	out := runREPL(t, env, "all\n")
	assert.Contains(t, out, "No contacts saved.")
	assert.Contains(t, out, "Good bye!")
}

func TestREPLDisambiguationPrompt(t *testing.T) {
	env, _ := setupEnv(t)

	first, err := env.Svc.Book().Add("John")
	require.NoError(t, err)
	require.NoError(t, first.AddPhone("0501111111"))
	second, err := env.Svc.Book().Add("John")
	require.NoError(t, err)
	require.NoError(t, second.AddPhone("0502222222"))

	input := "phone John\n" + first.ID[:8] + "\nexit\n"
	out := runREPL(t, env, input)

	assert.Contains(t, out, "Multiple contacts named")
	assert.Contains(t, out, "John: 0501111111")
}
