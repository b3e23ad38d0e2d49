package core

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
)

// AddressBook is an ordered collection of contacts. Names may repeat;
// ambiguous lookups are resolved by contact ID.
type AddressBook struct {
	Contacts []*Contact `yaml:"contacts"`
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

// Len returns the number of contacts.
func (b *AddressBook) Len() int {
	return len(b.Contacts)
}

// Add creates a contact with the given name and a fresh ID.
func (b *AddressBook) Add(name string) (*Contact, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("contact name cannot be empty")
	}
	c := &Contact{ID: uuid.NewString(), Name: name}
	b.Contacts = append(b.Contacts, c)
	return c, nil
}

// Remove deletes the contact with the given ID.
func (b *AddressBook) Remove(id string) error {
	for i, c := range b.Contacts {
		if c.ID == id {
			b.Contacts = append(b.Contacts[:i], b.Contacts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("contact %w", ErrNotFound)
}

// FindByName returns all contacts whose name matches, case-insensitively.
func (b *AddressBook) FindByName(name string) []*Contact {
	var matches []*Contact
	for _, c := range b.Contacts {
		if strings.EqualFold(c.Name, name) {
			matches = append(matches, c)
		}
	}
	return matches
}

// FindByID resolves a full ID or a unique ID prefix.
func (b *AddressBook) FindByID(idOrPrefix string) (*Contact, error) {
	if idOrPrefix == "" {
		return nil, fmt.Errorf("contact ID cannot be empty")
	}
	var matches []*Contact
	for _, c := range b.Contacts {
		if strings.HasPrefix(c.ID, idOrPrefix) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("contact ID %q %w", idOrPrefix, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("contact ID prefix %q is not unique", idOrPrefix)
	}
}

// Resolve looks a contact up by name. A single match is returned directly;
// multiple matches yield an AmbiguousError carrying the candidates.
func (b *AddressBook) Resolve(name string) (*Contact, error) {
	matches := b.FindByName(name)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("contact %q %w", name, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, &AmbiguousError{Name: name, Candidates: matches}
	}
}

// FindByPhone returns the contact holding the given phone number, if any.
func (b *AddressBook) FindByPhone(phone string) *Contact {
	for _, c := range b.Contacts {
		if c.HasPhone(phone) {
			return c
		}
	}
	return nil
}

// FindByEmail returns the contact holding the given email, if any.
func (b *AddressBook) FindByEmail(email string) *Contact {
	for _, c := range b.Contacts {
		if c.HasEmail(email) {
			return c
		}
	}
	return nil
}

// Search returns contacts matching the pattern against name, phones, emails
// or address. The pattern supports '*' and '?' wildcards; a plain word
// matches as a case-insensitive substring.
func (b *AddressBook) Search(pattern string) []*Contact {
	var matches []*Contact
	for _, c := range b.Contacts {
		fields := append([]string{c.Name, c.Address}, c.Phones...)
		fields = append(fields, c.Emails...)
		for _, f := range fields {
			if f == "" {
				continue
			}
			if matchField(pattern, f) {
				matches = append(matches, c)
				break
			}
		}
	}
	return matches
}

func matchField(pattern, field string) bool {
	if strings.ContainsAny(pattern, "*?") {
		ok, err := doublestar.Match(strings.ToLower(pattern), strings.ToLower(field))
		return err == nil && ok
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(pattern))
}
