package core

import (
	"fmt"
	"strings"
)

// Note is a titled free-text entry with optional tags.
type Note struct {
	Title string   `yaml:"title"`
	Text  string   `yaml:"text"`
	Tags  []string `yaml:"tags,omitempty"`
}

// HasTag reports whether the note carries the given tag, case-insensitively.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// AddTags appends tags, skipping ones the note already carries.
func (n *Note) AddTags(tags ...string) []string {
	var added []string
	for _, t := range tags {
		if t == "" || n.HasTag(t) {
			continue
		}
		n.Tags = append(n.Tags, t)
		added = append(added, t)
	}
	return added
}

// RemoveTag deletes a tag from the note.
func (n *Note) RemoveTag(tag string) error {
	for i, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			n.Tags = append(n.Tags[:i], n.Tags[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("tag %q %w on note %q", tag, ErrNotFound, n.Title)
}

// String renders the note as a single line.
func (n *Note) String() string {
	if len(n.Tags) == 0 {
		return fmt.Sprintf("%s: %s", n.Title, n.Text)
	}
	tags := make([]string, len(n.Tags))
	for i, t := range n.Tags {
		tags[i] = "#" + t
	}
	return fmt.Sprintf("%s: %s [%s]", n.Title, n.Text, strings.Join(tags, " "))
}
