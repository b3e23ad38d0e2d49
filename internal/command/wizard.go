package command

import (
	"context"
	"fmt"
	"strings"
)

// runCreateContact walks the user through every contact field. Repeated
// fields (phones, emails) accept entries until a blank line; optional single
// fields are skipped on blank input.
func runCreateContact(ctx context.Context, env *Env, args []string) (string, error) {
	if len(args) > 0 {
		return "", fmt.Errorf("the 'create-contact' command does not take arguments")
	}
	if env.Prompter == nil {
		return "", fmt.Errorf("create-contact needs an interactive prompt: use 'add [name] [phone]' instead")
	}

	name, err := env.Prompter.Prompt("Name (required)")
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("cancelled: a contact needs a name")
	}

	c, err := env.Svc.Book().Add(name)
	if err != nil {
		return "", err
	}
	// On any later failure the half-built contact is discarded so the
	// snapshot stays consistent.
	discard := func() { env.Svc.Book().Remove(c.ID) }

	for {
		phone, err := env.Prompter.Prompt("Phone (blank to finish)")
		if err != nil {
			discard()
			return "", err
		}
		phone = strings.TrimSpace(phone)
		if phone == "" {
			break
		}
		if err := c.AddPhone(phone); err != nil {
			env.Prompter.Say(Failure(err.Error()))
		}
	}

	for {
		email, err := env.Prompter.Prompt("Email (blank to finish)")
		if err != nil {
			discard()
			return "", err
		}
		email = strings.TrimSpace(email)
		if email == "" {
			break
		}
		if err := c.AddEmail(email); err != nil {
			env.Prompter.Say(Failure(err.Error()))
		}
	}

	address, err := env.Prompter.Prompt("Address (blank to skip)")
	if err != nil {
		discard()
		return "", err
	}
	if address = strings.TrimSpace(address); address != "" {
		c.Address = address
	}

	for {
		birthday, err := env.Prompter.Prompt("Birthday DD.MM.YYYY (blank to skip)")
		if err != nil {
			discard()
			return "", err
		}
		birthday = strings.TrimSpace(birthday)
		if birthday == "" {
			break
		}
		if err := c.SetBirthday(birthday); err != nil {
			env.Prompter.Say(Failure(err.Error()))
			continue
		}
		break
	}

	return Success(fmt.Sprintf("Contact created: %s", c)), nil
}
