package core

import (
	"fmt"
	"strings"
)

// Notebook is an ordered collection of notes keyed by title.
// Titles are unique, case-insensitively.
type Notebook struct {
	Notes []*Note `yaml:"notes"`
}

// NewNotebook creates an empty notebook.
func NewNotebook() *Notebook {
	return &Notebook{}
}

// Len returns the number of notes.
func (nb *Notebook) Len() int {
	return len(nb.Notes)
}

// Get retrieves a note by title.
func (nb *Notebook) Get(title string) (*Note, error) {
	for _, n := range nb.Notes {
		if strings.EqualFold(n.Title, title) {
			return n, nil
		}
	}
	return nil, fmt.Errorf("note %q %w", title, ErrNotFound)
}

// Add creates a note. The title must not be taken.
func (nb *Notebook) Add(title, text string, tags []string) (*Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("note title cannot be empty")
	}
	if _, err := nb.Get(title); err == nil {
		return nil, fmt.Errorf("note %q %w: use edit-note or pick another title", title, ErrDuplicate)
	}
	n := &Note{Title: title, Text: text}
	n.AddTags(tags...)
	nb.Notes = append(nb.Notes, n)
	return n, nil
}

// Edit replaces the text of an existing note.
func (nb *Notebook) Edit(title, text string) error {
	n, err := nb.Get(title)
	if err != nil {
		return err
	}
	n.Text = text
	return nil
}

// Remove deletes a note by title.
func (nb *Notebook) Remove(title string) error {
	for i, n := range nb.Notes {
		if strings.EqualFold(n.Title, title) {
			nb.Notes = append(nb.Notes[:i], nb.Notes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("note %q %w", title, ErrNotFound)
}

// Query filters notes. All of the AND words and none of the NOT words must
// appear in the note text; at least one OR word must appear when any are
// given; at least one of Tags must be on the note when any are given.
// Word matching is a case-insensitive substring test.
type Query struct {
	And  []string
	Or   []string
	Not  []string
	Tags []string
}

// Empty reports whether the query has no terms at all.
func (q Query) Empty() bool {
	return len(q.And) == 0 && len(q.Or) == 0 && len(q.Not) == 0 && len(q.Tags) == 0
}

// Find returns the notes matching the query, in notebook order.
func (nb *Notebook) Find(q Query) []*Note {
	var matches []*Note
	for _, n := range nb.Notes {
		if q.matches(n) {
			matches = append(matches, n)
		}
	}
	return matches
}

func (q Query) matches(n *Note) bool {
	text := strings.ToLower(n.Text)
	for _, w := range q.And {
		if !strings.Contains(text, strings.ToLower(w)) {
			return false
		}
	}
	for _, w := range q.Not {
		if strings.Contains(text, strings.ToLower(w)) {
			return false
		}
	}
	if len(q.Or) > 0 {
		hit := false
		for _, w := range q.Or {
			if strings.Contains(text, strings.ToLower(w)) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	if len(q.Tags) > 0 {
		hit := false
		for _, t := range q.Tags {
			if n.HasTag(t) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}
