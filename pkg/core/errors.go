package core

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// AmbiguousError is returned when a name lookup matches more than one contact.
// Callers are expected to retry with one of the candidate IDs.
type AmbiguousError struct {
	Name       string
	Candidates []*Contact
}

func (e *AmbiguousError) Error() string {
	ids := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		ids[i] = ShortID(c.ID)
	}
	return fmt.Sprintf("multiple contacts named %q: %s (specify an ID)", e.Name, strings.Join(ids, ", "))
}

// ShortID truncates a contact ID for display. Full IDs remain valid input
// everywhere a short one is shown.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
