package core

import (
	"fmt"
	"strings"
)

// Contact is a person record. Phones and emails are validated on entry and
// hold no duplicates within one contact. Address and Birthday are optional.
type Contact struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Phones   []string `yaml:"phones,omitempty"`
	Emails   []string `yaml:"emails,omitempty"`
	Address  string   `yaml:"address,omitempty"`
	Birthday *Date    `yaml:"birthday,omitempty"`
}

// HasPhone reports whether the contact already holds the given phone number.
func (c *Contact) HasPhone(phone string) bool {
	for _, p := range c.Phones {
		if p == phone {
			return true
		}
	}
	return false
}

// AddPhone validates and appends a phone number.
func (c *Contact) AddPhone(phone string) error {
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	if c.HasPhone(phone) {
		return fmt.Errorf("phone number %q %w for this contact", phone, ErrDuplicate)
	}
	c.Phones = append(c.Phones, phone)
	return nil
}

// RemovePhone deletes a phone number, preserving the order of the rest.
func (c *Contact) RemovePhone(phone string) error {
	for i, p := range c.Phones {
		if p == phone {
			c.Phones = append(c.Phones[:i], c.Phones[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("phone number %q %w", phone, ErrNotFound)
}

// EditPhone replaces an existing phone number with a new, validated one.
func (c *Contact) EditPhone(oldPhone, newPhone string) error {
	if err := ValidatePhone(newPhone); err != nil {
		return err
	}
	if c.HasPhone(newPhone) {
		return fmt.Errorf("phone number %q %w for this contact", newPhone, ErrDuplicate)
	}
	for i, p := range c.Phones {
		if p == oldPhone {
			c.Phones[i] = newPhone
			return nil
		}
	}
	return fmt.Errorf("phone number %q %w", oldPhone, ErrNotFound)
}

// HasEmail reports whether the contact already holds the given email.
func (c *Contact) HasEmail(email string) bool {
	for _, e := range c.Emails {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

// AddEmail validates and appends an email address.
func (c *Contact) AddEmail(email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if c.HasEmail(email) {
		return fmt.Errorf("email %q %w for this contact", email, ErrDuplicate)
	}
	c.Emails = append(c.Emails, email)
	return nil
}

// RemoveEmail deletes an email address.
func (c *Contact) RemoveEmail(email string) error {
	for i, e := range c.Emails {
		if strings.EqualFold(e, email) {
			c.Emails = append(c.Emails[:i], c.Emails[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("email %q %w", email, ErrNotFound)
}

// EditEmail replaces an existing email with a new, validated one.
func (c *Contact) EditEmail(oldEmail, newEmail string) error {
	if err := ValidateEmail(newEmail); err != nil {
		return err
	}
	if c.HasEmail(newEmail) {
		return fmt.Errorf("email %q %w for this contact", newEmail, ErrDuplicate)
	}
	for i, e := range c.Emails {
		if strings.EqualFold(e, oldEmail) {
			c.Emails[i] = newEmail
			return nil
		}
	}
	return fmt.Errorf("email %q %w", oldEmail, ErrNotFound)
}

// SetAddress records the contact's address. A contact holds at most one.
func (c *Contact) SetAddress(address string) error {
	if c.Address != "" {
		return fmt.Errorf("address %w: use change-address to replace it", ErrDuplicate)
	}
	c.Address = address
	return nil
}

// RemoveAddress clears the address if it matches the given one.
func (c *Contact) RemoveAddress(address string) error {
	if c.Address == "" || !strings.EqualFold(c.Address, address) {
		return fmt.Errorf("address %q %w", address, ErrNotFound)
	}
	c.Address = ""
	return nil
}

// EditAddress replaces the current address, which must match oldAddress.
func (c *Contact) EditAddress(oldAddress, newAddress string) error {
	if c.Address == "" || !strings.EqualFold(c.Address, oldAddress) {
		return fmt.Errorf("address %q %w", oldAddress, ErrNotFound)
	}
	c.Address = newAddress
	return nil
}

// SetBirthday records the contact's birthday from a DD.MM.YYYY string.
// A birthday can only be set once.
func (c *Contact) SetBirthday(date string) error {
	if c.Birthday != nil {
		return fmt.Errorf("birthday %w", ErrDuplicate)
	}
	d, err := ParseDate(date)
	if err != nil {
		return err
	}
	c.Birthday = &d
	return nil
}

// String renders the contact as a single summary line.
func (c *Contact) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s", ShortID(c.ID), c.Name)
	if len(c.Phones) > 0 {
		fmt.Fprintf(&sb, ", phones: %s", strings.Join(c.Phones, "; "))
	}
	if len(c.Emails) > 0 {
		fmt.Fprintf(&sb, ", emails: %s", strings.Join(c.Emails, "; "))
	}
	if c.Address != "" {
		fmt.Fprintf(&sb, ", address: %s", c.Address)
	}
	if c.Birthday != nil {
		fmt.Fprintf(&sb, ", birthday: %s", c.Birthday)
	}
	return sb.String()
}
