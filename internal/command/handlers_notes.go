package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/andriiko/attache/pkg/core"
)

func (r *Registry) registerNoteCommands() {
	r.register(&Command{
		Name:     "add-note",
		Usage:    "add-note [title] [text] [#tag1 #tag2 ...]",
		Desc:     "Add a note with optional tags (starting with #).",
		Example:  "add-note homework 'Do it today' #todo #urgent",
		Mutating: true,
		Run:      runAddNote,
	})
	r.register(&Command{
		Name:     "edit-note",
		Usage:    "edit-note [title] [text]",
		Desc:     "Replace the text of a note.",
		Example:  "edit-note homework 'Done yesterday'",
		Mutating: true,
		Run:      runEditNote,
	})
	r.register(&Command{
		Name:     "delete-note",
		Usage:    "delete-note [title]",
		Desc:     "Delete a note.",
		Example:  "delete-note homework",
		Mutating: true,
		Run:      runDeleteNote,
	})
	r.register(&Command{
		Name:    "all-notes",
		Usage:   "all-notes",
		Desc:    "List every note in the notebook.",
		Example: "all-notes",
		Run:     runAllNotes,
	})
	r.register(&Command{
		Name:    "show-note",
		Usage:   "show-note [title]",
		Desc:    "Show the full text of a note.",
		Example: "show-note homework",
		Run:     runShowNote,
	})
	r.register(&Command{
		Name:    "find-notes",
		Usage:   "find-notes [word | +word | -word] [#tag1 ...]",
		Desc:    "Find notes by keywords (+ for AND, - for NOT, bare for OR) and tags.",
		Example: "find-notes report +financial -draft #urgent",
		Run:     runFindNotes,
	})
	r.register(&Command{
		Name:     "add-tags",
		Usage:    "add-tags [title] [#tag1 #tag2 ...]",
		Desc:     "Add one or more tags to a note.",
		Example:  "add-tags homework #urgent #school",
		Mutating: true,
		Run:      runAddTags,
	})
	r.register(&Command{
		Name:     "remove-tag",
		Usage:    "remove-tag [title] [#tag]",
		Desc:     "Remove a tag from a note.",
		Example:  "remove-tag homework #urgent",
		Mutating: true,
		Run:      runRemoveTag,
	})
}

func runAddNote(ctx context.Context, env *Env, args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("provide a note title and text (in quotes). Optional: tags starting with #")
	}

	title := args[0]
	var textParts, tags []string
	for _, arg := range args[1:] {
		switch {
		case strings.HasPrefix(arg, "#"):
			tags = append(tags, strings.TrimPrefix(arg, "#"))
		case len(tags) == 0:
			textParts = append(textParts, arg)
		default:
			return "", fmt.Errorf("text must come before tags, and tags must start with '#'")
		}
	}
	if len(textParts) == 0 {
		return "", fmt.Errorf("provide the note text (in quotes)")
	}

	text := strings.Join(textParts, " ")
	if _, err := env.Svc.Notebook().Add(title, text, tags); err != nil {
		return "", err
	}

	tagInfo := ""
	if len(tags) > 0 {
		tagInfo = fmt.Sprintf(" with tags: %s", strings.Join(tags, ", "))
	}
	return Success(fmt.Sprintf("Added note %q with text: %q%s", title, text, tagInfo)), nil
}

func runEditNote(ctx context.Context, env *Env, args []string) (string, error) {
	if err := wantArgs(args, 2, "edit-note [title] [text]"); err != nil {
		return "", err
	}
	if err := env.Svc.Notebook().Edit(args[0], args[1]); err != nil {
		return "", err
	}
	return Success(fmt.Sprintf("Changed note %q to: %s", args[0], args[1])), nil
}

func runDeleteNote(ctx context.Context, env *Env, args []string) (string, error) {
	if err := wantArgs(args, 1, "delete-note [title]"); err != nil {
		return "", err
	}
	if err := env.Svc.Notebook().Remove(args[0]); err != nil {
		return "", err
	}
	return Success(fmt.Sprintf("Deleted note %q", args[0])), nil
}

func runAllNotes(ctx context.Context, env *Env, args []string) (string, error) {
	if len(args) > 0 {
		return "", fmt.Errorf("the 'all-notes' command does not take arguments")
	}
	nb := env.Svc.Notebook()
	if nb.Len() == 0 {
		return "No notes saved.", nil
	}
	lines := make([]string, 0, nb.Len())
	for _, n := range nb.Notes {
		lines = append(lines, n.String())
	}
	return strings.Join(lines, "\n"), nil
}

func runShowNote(ctx context.Context, env *Env, args []string) (string, error) {
	if err := wantArgs(args, 1, "show-note [title]"); err != nil {
		return "", err
	}
	n, err := env.Svc.Notebook().Get(args[0])
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func runFindNotes(ctx context.Context, env *Env, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("provide one or more search words or #tags")
	}

	var q core.Query
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "#"):
			q.Tags = append(q.Tags, strings.TrimPrefix(arg, "#"))
		case strings.HasPrefix(arg, "+"):
			q.And = append(q.And, strings.TrimPrefix(arg, "+"))
		case strings.HasPrefix(arg, "-"):
			q.Not = append(q.Not, strings.TrimPrefix(arg, "-"))
		default:
			q.Or = append(q.Or, arg)
		}
	}
	if q.Empty() {
		return "", fmt.Errorf("provide one or more search words or #tags")
	}

	matches := env.Svc.Notebook().Find(q)
	if len(matches) == 0 {
		return "No matching notes found.", nil
	}
	lines := make([]string, 0, len(matches))
	for _, n := range matches {
		lines = append(lines, n.String())
	}
	return strings.Join(lines, "\n"), nil
}

func runAddTags(ctx context.Context, env *Env, args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("provide a note title and at least one tag (starting with #)")
	}

	n, err := env.Svc.Notebook().Get(args[0])
	if err != nil {
		return "", err
	}

	var tags []string
	for _, arg := range args[1:] {
		if !strings.HasPrefix(arg, "#") {
			return "", fmt.Errorf("all tags must start with '#'")
		}
		tags = append(tags, strings.TrimPrefix(arg, "#"))
	}

	added := n.AddTags(tags...)
	if len(added) == 0 {
		return fmt.Sprintf("Note %q already has those tags.", n.Title), nil
	}
	return Success(fmt.Sprintf("Tags added to note %q: %s", n.Title, strings.Join(added, ", "))), nil
}

func runRemoveTag(ctx context.Context, env *Env, args []string) (string, error) {
	if err := wantArgs(args, 2, "remove-tag [title] [#tag]"); err != nil {
		return "", err
	}
	if !strings.HasPrefix(args[1], "#") {
		return "", fmt.Errorf("the tag must start with '#'")
	}
	tag := strings.TrimPrefix(args[1], "#")

	n, err := env.Svc.Notebook().Get(args[0])
	if err != nil {
		return "", err
	}
	if err := n.RemoveTag(tag); err != nil {
		return "", err
	}
	return Success(fmt.Sprintf("Tag %q removed from note %q.", tag, n.Title)), nil
}
