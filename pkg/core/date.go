package core

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the wire and display format for birthdays.
const DateLayout = "02.01.2006"

// Date is a calendar date (no time-of-day component).
// It serializes to YAML as DD.MM.YYYY.
type Date struct {
	time.Time
}

// ParseDate parses a DD.MM.YYYY string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: use DD.MM.YYYY", s)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
