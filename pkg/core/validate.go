package core

import (
	"fmt"
	"regexp"
)

var (
	phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidatePhone checks that a phone number is an optional leading '+'
// followed by 10 to 15 digits.
func ValidatePhone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return fmt.Errorf("invalid phone number %q: expected optional '+' followed by 10-15 digits", phone)
	}
	return nil
}

// ValidateEmail checks that an email address has a local@domain shape.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return fmt.Errorf("invalid email address %q", email)
	}
	return nil
}
