package command_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriiko/attache/internal/command"
	"github.com/andriiko/attache/pkg/assistant"
	"github.com/andriiko/attache/pkg/core"
)

func TestMain(m *testing.M) {
	command.DisableColor()
	os.Exit(m.Run())
}

// fakePrompter feeds canned answers to handlers that ask follow-up questions.
type fakePrompter struct {
	answers []string
	said    []string
}

func (f *fakePrompter) Prompt(label string) (string, error) {
	if len(f.answers) == 0 {
		return "", io.EOF
	}
	answer := f.answers[0]
	f.answers = f.answers[1:]
	return answer, nil
}

func (f *fakePrompter) Say(msg string) {
	f.said = append(f.said, msg)
}

func setupEnv(t *testing.T) (*command.Env, string) {
	t.Helper()
	dir := t.TempDir()
	svc, err := assistant.New(context.Background(), assistant.WithDataDir(dir))
	require.NoError(t, err)
	return &command.Env{Svc: svc, BirthdayDays: 7}, dir
}

func dispatch(t *testing.T, env *command.Env, line string) (string, error) {
	t.Helper()
	return command.NewRegistry().Dispatch(context.Background(), env, line)
}

func TestDispatchAddAndLookup(t *testing.T) {
	env, _ := setupEnv(t)

	out, err := dispatch(t, env, "add John 0501234567")
	require.NoError(t, err)
	assert.Equal(t, "Contact added.", out)

	out, err = dispatch(t, env, "phone John")
	require.NoError(t, err)
	assert.Equal(t, "John: 0501234567", out)

	out, err = dispatch(t, env, "add John 0507654321")
	require.NoError(t, err)
	assert.Equal(t, "Contact updated.", out)

	out, err = dispatch(t, env, "phone John")
	require.NoError(t, err)
	assert.Equal(t, "John: 0501234567; 0507654321", out)
}

func TestDispatchFailedCommandDoesNotSave(t *testing.T) {
	env, dir := setupEnv(t)

	_, err := dispatch(t, env, "add John 123")
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "contacts.yaml"))
	assert.True(t, os.IsNotExist(statErr), "failed command must not persist anything")
	assert.Zero(t, env.Svc.Book().Len(), "half-created contact must be discarded")
}

func TestDispatchSuccessfulCommandSaves(t *testing.T) {
	env, dir := setupEnv(t)

	_, err := dispatch(t, env, "add John 0501234567")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "contacts.yaml"))
	require.NoError(t, statErr)
}

func TestDispatchUnknownCommand(t *testing.T) {
	env, _ := setupEnv(t)

	_, err := dispatch(t, env, "frobnicate now")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid command")
}

func TestDispatchArity(t *testing.T) {
	env, _ := setupEnv(t)

	for _, line := range []string{"phone", "add John", "add John 0501234567 extra", "change John 0501234567"} {
		_, err := dispatch(t, env, line)
		assert.Error(t, err, "line %q should be rejected", line)
	}
}

func TestDispatchPhoneOwnedByOther(t *testing.T) {
	env, _ := setupEnv(t)

	_, err := dispatch(t, env, "add John 0501234567")
	require.NoError(t, err)

	_, err = dispatch(t, env, "add Alice 0501234567")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestDispatchBirthdayFlow(t *testing.T) {
	env, _ := setupEnv(t)

	out, err := dispatch(t, env, "add-birthday John 01.01.1990")
	require.NoError(t, err)
	assert.Equal(t, "Contact added.", out)

	out, err = dispatch(t, env, "show-birthday John")
	require.NoError(t, err)
	assert.Equal(t, "John: 01.01.1990", out)

	_, err = dispatch(t, env, "add-birthday John 02.02.1991")
	require.Error(t, err, "birthday can only be set once")
}

func TestDispatchNotesLifecycle(t *testing.T) {
	env, _ := setupEnv(t)

	out, err := dispatch(t, env, "add-note homework 'Do it today' #todo #urgent")
	require.NoError(t, err)
	assert.Contains(t, out, `Added note "homework"`)

	out, err = dispatch(t, env, "all-notes")
	require.NoError(t, err)
	assert.Contains(t, out, "homework: Do it today [#todo #urgent]")

	_, err = dispatch(t, env, "delete-note homework")
	require.NoError(t, err)

	out, err = dispatch(t, env, "all-notes")
	require.NoError(t, err)
	assert.Equal(t, "No notes saved.", out)
}

func TestDispatchFindNotes(t *testing.T) {
	env, _ := setupEnv(t)

	_, err := dispatch(t, env, "add-note report 'Quarterly financial report draft' #work")
	require.NoError(t, err)
	_, err = dispatch(t, env, "add-note plan 'Financial plan' #work")
	require.NoError(t, err)

	out, err := dispatch(t, env, "find-notes +financial -draft #work")
	require.NoError(t, err)
	assert.Contains(t, out, "plan:")
	assert.NotContains(t, out, "report:")

	out, err = dispatch(t, env, "find-notes vacation")
	require.NoError(t, err)
	assert.Equal(t, "No matching notes found.", out)
}

func TestDispatchTags(t *testing.T) {
	env, _ := setupEnv(t)

	_, err := dispatch(t, env, "add-note homework 'Do it' #todo")
	require.NoError(t, err)

	out, err := dispatch(t, env, "add-tags homework #urgent #school")
	require.NoError(t, err)
	assert.Contains(t, out, "urgent, school")

	_, err = dispatch(t, env, "add-tags homework urgent")
	require.Error(t, err, "tags must start with #")

	_, err = dispatch(t, env, "remove-tag homework #urgent")
	require.NoError(t, err)

	out, err = dispatch(t, env, "show-note homework")
	require.NoError(t, err)
	assert.Equal(t, "homework: Do it [#todo #school]", out)
}

func TestDispatchAmbiguousName(t *testing.T) {
	env, _ := setupEnv(t)

	first, err := env.Svc.Book().Add("John")
	require.NoError(t, err)
	require.NoError(t, first.AddPhone("0501111111"))
	second, err := env.Svc.Book().Add("John")
	require.NoError(t, err)
	require.NoError(t, second.AddPhone("0502222222"))

	t.Run("Non Interactive Fails With Candidates", func(t *testing.T) {
		_, err := dispatch(t, env, "phone John")
		require.Error(t, err)
		var amb *core.AmbiguousError
		require.True(t, errors.As(err, &amb))
		assert.Len(t, amb.Candidates, 2)
	})

	t.Run("Prompted ID Resolves", func(t *testing.T) {
		env.Prompter = &fakePrompter{answers: []string{second.ID[:8]}}
		defer func() { env.Prompter = nil }()

		out, err := dispatch(t, env, "phone John")
		require.NoError(t, err)
		assert.Equal(t, "John: 0502222222", out)
	})

	t.Run("Blank Answer Cancels", func(t *testing.T) {
		env.Prompter = &fakePrompter{answers: []string{""}}
		defer func() { env.Prompter = nil }()

		_, err := dispatch(t, env, "phone John")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cancelled")
	})

	t.Run("ID Works Directly", func(t *testing.T) {
		out, err := dispatch(t, env, "phone "+first.ID[:8])
		require.NoError(t, err)
		assert.Equal(t, "John: 0501111111", out)
	})

	t.Run("Wrong ID Answer Does Not Create Duplicate", func(t *testing.T) {
		env.Prompter = &fakePrompter{answers: []string{"zzzz-not-an-id"}}
		defer func() { env.Prompter = nil }()

		_, err := dispatch(t, env, "add John 0509999999")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match")
		assert.Equal(t, 2, env.Svc.Book().Len(), "a mistyped ID must not mint a third John")
	})

	t.Run("Phone Owned By Namesake Rejected", func(t *testing.T) {
		env.Prompter = &fakePrompter{answers: []string{second.ID[:8]}}
		defer func() { env.Prompter = nil }()

		_, err := dispatch(t, env, "add John 0501111111")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
		assert.Equal(t, []string{"0502222222"}, second.Phones, "the other John's number must not land here")
	})
}

func TestDispatchArgsVerbatim(t *testing.T) {
	env, _ := setupEnv(t)
	registry := command.NewRegistry()

	out, err := registry.DispatchArgs(context.Background(), env, []string{"add-note", "memo", "it's due 'today'", "#todo"})
	require.NoError(t, err)
	assert.Contains(t, out, `Added note "memo"`)

	out, err = registry.DispatchArgs(context.Background(), env, []string{"show-note", "memo"})
	require.NoError(t, err)
	assert.Equal(t, "memo: it's due 'today' [#todo]", out)
}

func TestDispatchCreateContactWizard(t *testing.T) {
	env, _ := setupEnv(t)

	t.Run("Needs Prompter", func(t *testing.T) {
		_, err := dispatch(t, env, "create-contact")
		require.Error(t, err)
	})

	t.Run("Full Walkthrough", func(t *testing.T) {
		prompter := &fakePrompter{answers: []string{
			"Bob",          // name
			"0501234567",   // phone
			"",             // end phones
			"bob@mail.com", // email
			"",             // end emails
			"5 Oak Ave",    // address
			"03.03.1993",   // birthday
		}}
		env.Prompter = prompter
		defer func() { env.Prompter = nil }()

		out, err := dispatch(t, env, "create-contact")
		require.NoError(t, err)
		assert.Contains(t, out, "Contact created")

		bob, err := env.Svc.Book().Resolve("Bob")
		require.NoError(t, err)
		assert.Equal(t, []string{"0501234567"}, bob.Phones)
		assert.Equal(t, []string{"bob@mail.com"}, bob.Emails)
		assert.Equal(t, "5 Oak Ave", bob.Address)
		assert.Equal(t, "03.03.1993", bob.Birthday.String())
	})

	t.Run("Invalid Phone Retries", func(t *testing.T) {
		prompter := &fakePrompter{answers: []string{
			"Carol",
			"12", // invalid, reported via Say
			"",   // end phones
			"", "", "",
		}}
		env.Prompter = prompter
		defer func() { env.Prompter = nil }()

		_, err := dispatch(t, env, "create-contact")
		require.NoError(t, err)
		require.NotEmpty(t, prompter.said)

		carol, err := env.Svc.Book().Resolve("Carol")
		require.NoError(t, err)
		assert.Empty(t, carol.Phones)
	})

	t.Run("Blank Name Cancels", func(t *testing.T) {
		env.Prompter = &fakePrompter{answers: []string{""}}
		defer func() { env.Prompter = nil }()

		_, err := dispatch(t, env, "create-contact")
		require.Error(t, err)
	})
}

func TestDispatchSearch(t *testing.T) {
	env, _ := setupEnv(t)

	_, err := dispatch(t, env, "add John 0501234567")
	require.NoError(t, err)
	_, err = dispatch(t, env, "add-email Alice alice@example.com")
	require.NoError(t, err)

	out, err := dispatch(t, env, "search Jo*n")
	require.NoError(t, err)
	assert.Contains(t, out, "John")
	assert.NotContains(t, out, "Alice")

	out, err = dispatch(t, env, "search example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Alice")
}

func TestDispatchHelp(t *testing.T) {
	env, _ := setupEnv(t)

	out, err := dispatch(t, env, "help")
	require.NoError(t, err)
	assert.Contains(t, out, "add:")
	assert.Contains(t, out, "find-notes:")

	out, err = dispatch(t, env, "help add")
	require.NoError(t, err)
	assert.Contains(t, out, "add [name] [phone]")

	_, err = dispatch(t, env, "help nope")
	require.Error(t, err)
}
