package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/andriiko/attache/pkg/core"
)

func (r *Registry) registerContactCommands() {
	r.register(&Command{
		Name:     "add",
		Usage:    "add [name] [phone]",
		Desc:     "Add a phone to a contact, creating the contact if missing.",
		Example:  "add John +380501234567",
		Mutating: true,
		Run:      runAdd,
	})
	r.register(&Command{
		Name:     "change",
		Usage:    "change [name] [old_phone] [new_phone]",
		Desc:     "Change an existing phone number for a contact.",
		Example:  "change John 0501234567 0507654321",
		Mutating: true,
		Run:      runChange,
	})
	r.register(&Command{
		Name:     "delete",
		Usage:    "delete [name] or delete [name] [phone]",
		Desc:     "Delete a contact, or just one of its phone numbers.",
		Example:  "delete John",
		Mutating: true,
		Run:      runDelete,
	})
	r.register(&Command{
		Name:    "phone",
		Usage:   "phone [name]",
		Desc:    "Show all phone numbers of a contact.",
		Example: "phone John",
		Run:     runPhone,
	})
	r.register(&Command{
		Name:    "all",
		Usage:   "all",
		Desc:    "List every contact in the address book.",
		Example: "all",
		Run:     runAll,
	})
	r.register(&Command{
		Name:    "search",
		Usage:   "search [pattern]",
		Desc:    "Find contacts by name, phone, email or address. Supports * and ? wildcards.",
		Example: "search Jo*n",
		Run:     runSearch,
	})
	r.register(&Command{
		Name:     "create-contact",
		Usage:    "create-contact",
		Desc:     "Create a contact interactively, field by field.",
		Example:  "create-contact",
		Mutating: true,
		Run:      runCreateContact,
	})
	r.register(&Command{
		Name:     "add-birthday",
		Usage:    "add-birthday [name] [DD.MM.YYYY]",
		Desc:     "Add a birthday to a contact (creates the contact if missing).",
		Example:  "add-birthday John 01.01.1990",
		Mutating: true,
		Run:      runAddBirthday,
	})
	r.register(&Command{
		Name:    "show-birthday",
		Usage:   "show-birthday [name]",
		Desc:    "Show a contact's birthday.",
		Example: "show-birthday John",
		Run:     runShowBirthday,
	})
	r.register(&Command{
		Name:    "birthdays",
		Usage:   "birthdays [days]",
		Desc:    "List upcoming birthdays grouped by congratulation weekday.",
		Example: "birthdays 7",
		Run:     runBirthdays,
	})
	r.register(&Command{
		Name:     "add-email",
		Usage:    "add-email [name] [email]",
		Desc:     "Add an email address to a contact (creates the contact if missing).",
		Example:  "add-email John john@example.com",
		Mutating: true,
		Run:      runAddEmail,
	})
	r.register(&Command{
		Name:     "remove-email",
		Usage:    "remove-email [name] [email]",
		Desc:     "Remove an email address from a contact.",
		Example:  "remove-email John john@example.com",
		Mutating: true,
		Run:      runRemoveEmail,
	})
	r.register(&Command{
		Name:     "change-email",
		Usage:    "change-email [name] [old_email] [new_email]",
		Desc:     "Replace an email address of a contact.",
		Example:  "change-email John old@example.com new@example.com",
		Mutating: true,
		Run:      runChangeEmail,
	})
	r.register(&Command{
		Name:     "add-address",
		Usage:    "add-address [name] [address]",
		Desc:     "Add a physical address to a contact (creates the contact if missing).",
		Example:  "add-address John '123 Main St'",
		Mutating: true,
		Run:      runAddAddress,
	})
	r.register(&Command{
		Name:     "remove-address",
		Usage:    "remove-address [name] [address]",
		Desc:     "Remove the contact's address.",
		Example:  "remove-address John '123 Main St'",
		Mutating: true,
		Run:      runRemoveAddress,
	})
	r.register(&Command{
		Name:     "change-address",
		Usage:    "change-address [name] [old_address] [new_address]",
		Desc:     "Replace the contact's address.",
		Example:  "change-address John '123 Old St' '456 New St'",
		Mutating: true,
		Run:      runChangeAddress,
	})
}

// resolveContact accepts a contact name or an ID (full or unique prefix).
// Ambiguous names are settled interactively when a prompter is available.
func resolveContact(env *Env, ref string) (*core.Contact, error) {
	book := env.Svc.Book()
	c, err := book.Resolve(ref)
	if err == nil {
		return c, nil
	}

	var amb *core.AmbiguousError
	if errors.As(err, &amb) {
		return disambiguate(env, amb)
	}

	if errors.Is(err, core.ErrNotFound) {
		if byID, idErr := book.FindByID(ref); idErr == nil {
			return byID, nil
		}
	}
	return nil, err
}

func disambiguate(env *Env, amb *core.AmbiguousError) (*core.Contact, error) {
	if env.Prompter == nil {
		return nil, amb
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Multiple contacts named %q:\n", amb.Name)
	for _, c := range amb.Candidates {
		fmt.Fprintf(&sb, "  %s\n", c)
	}
	sb.WriteString("Enter ID (blank to cancel)")

	answer, err := env.Prompter.Prompt(sb.String())
	if err != nil {
		return nil, err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, fmt.Errorf("cancelled")
	}
	var picked *core.Contact
	for _, c := range amb.Candidates {
		if strings.HasPrefix(c.ID, answer) {
			if picked != nil {
				return nil, fmt.Errorf("ID prefix %q matches more than one of the listed contacts", answer)
			}
			picked = c
		}
	}
	if picked == nil {
		return nil, fmt.Errorf("ID %q does not match any of the listed contacts", answer)
	}
	return picked, nil
}

// findOrCreate resolves a contact by name, creating it when absent. The
// second return value reports whether a new contact was created. A contact
// is only ever created when the name itself is unknown; a failed answer to
// the disambiguation prompt propagates as an error, it must not mint a
// duplicate.
func findOrCreate(env *Env, name string) (*core.Contact, bool, error) {
	book := env.Svc.Book()

	c, err := book.Resolve(name)
	if err == nil {
		return c, false, nil
	}

	var amb *core.AmbiguousError
	if errors.As(err, &amb) {
		picked, pickErr := disambiguate(env, amb)
		if pickErr != nil {
			return nil, false, pickErr
		}
		return picked, false, nil
	}

	if errors.Is(err, core.ErrNotFound) {
		if byID, idErr := book.FindByID(name); idErr == nil {
			return byID, false, nil
		}
		created, addErr := book.Add(name)
		if addErr != nil {
			return nil, false, addErr
		}
		return created, true, nil
	}
	return nil, false, err
}

func runAdd(ctx context.Context, env *Env, args []string) (string, error) {
	if err := wantArgs(args, 2, "add [name] [phone]"); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	c, created, err := findOrCreate(env, name)
	if err != nil {
		return "", err
	}
	if owner := env.Svc.Book().FindByPhone(phone); owner != nil && owner.ID != c.ID {
		if created {
			env.Svc.Book().Remove(c.ID)
		}
		return "", fmt.Errorf("phone number %q is already registered to contact %q", phone, owner.Name)
	}
	if err := c.AddPhone(phone); err != nil {
		if created {
			env.Svc.Book().Remove(c.ID)
		}
		return "", err
	}
	if created {
		return Success("Contact added."), nil
	}
	return Success("Contact updated."), nil
}

func runChange(ctx context.Context, env *Env, args []string) (string, error) {
	if err := wantArgs(args, 3, "change [name] [old_phone] [new_phone]"); err != nil {
		return "", err
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	c, err := resolveContact(env, name)
	if err != nil {
		return "", err
	}
	if owner := env.Svc.Book().FindByPhone(newPhone); owner != nil && owner.ID != c.ID {
		return "", fmt.Errorf("phone number %q is already registered to contact %q", newPhone, owner.Name)
	}
	if err := c.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return Success("Phone changed."), nil
}

func runDelete(ctx context.Context, env *Env, args []string) (string, error) {
	if len(args) < 1 || len(args) > 2 {
		return "", fmt.Errorf("expected: delete [name] to remove a contact, or delete [name] [phone] to remove one phone")
	}

	c, err := resolveContact(env, args[0])
	if err != nil {
		return "", err
	}

	if len(args) == 2 {
		if err := c.RemovePhone(args[1]); err != nil {
			return "", err
		}
		return Success(fmt.Sprintf("Phone %s deleted for contact %s.", args[1], c.Name)), nil
	}

	if err := env.Svc.Book().Remove(c.ID); err != nil {
		return "", err
	}
	return Success(fmt.Sprintf("Contact %s deleted.", c.Name)), nil
}

func runPhone(ctx context.Context, env *Env, args []string) (string, error) {
	if err := wantArgs(args, 1, "phone [name]"); err != nil {
		return "", err
	}
	c, err := resolveContact(env, args[0])
	if err != nil {
		return "", err
	}
	if len(c.Phones) == 0 {
		return fmt.Sprintf("Contact %s has no phones saved.", c.Name), nil
	}
	return fmt.Sprintf("%s: %s", c.Name, strings.Join(c.Phones, "; ")), nil
}

func runAll(ctx context.Context, env *Env, args []string) (string, error) {
	if len(args) > 0 {
		return "", fmt.Errorf("the 'all' command does not take arguments")
	}
	book := env.Svc.Book()
	if book.Len() == 0 {
		return "No contacts saved.", nil
	}
	lines := make([]string, 0, book.Len())
	for _, c := range book.Contacts {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n"), nil
}

func runSearch(ctx context.Context, env *Env, args []string) (string, error) {
	if err := wantArgs(args, 1, "search [pattern]"); err != nil {
		return "", err
	}
	matches := env.Svc.Book().Search(args[0])
	if len(matches) == 0 {
		return fmt.Sprintf("No contacts matching %q.", args[0]), nil
	}
	lines := make([]string, 0, len(matches))
	for _, c := range matches {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n"), nil
}

func runAddBirthday(ctx context.Context, env *Env, args []string) (string, error) {
	if err := wantArgs(args, 2, "add-birthday [name] [DD.MM.YYYY]"); err != nil {
		return "", err
	}
	c, created, err := findOrCreate(env, args[0])
	if err != nil {
		return "", err
	}
	if err := c.SetBirthday(args[1]); err != nil {
		if created {
			env.Svc.Book().Remove(c.ID)
		}
		return "", err
	}
	if created {
		return Success("Contact added."), nil
	}
	return Success("Birthday added."), nil
}

func runShowBirthday(ctx context.Context, env *Env, args []string) (string, error) {
	if err := wantArgs(args, 1, "show-birthday [name]"); err != nil {
		return "", err
	}
	c, err := resolveContact(env, args[0])
	if err != nil {
		return "", err
	}
	if c.Birthday == nil {
		return fmt.Sprintf("Contact %s has no birthday saved.", c.Name), nil
	}
	return fmt.Sprintf("%s: %s", c.Name, c.Birthday), nil
}

func runBirthdays(ctx context.Context, env *Env, args []string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("too many arguments. Expected: birthdays [days]")
	}
	days := env.BirthdayDays
	if days <= 0 {
		days = 7
	}
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("days must be an integer")
		}
		if n <= 0 {
			return "", fmt.Errorf("days must be a positive integer")
		}
		days = n
	}

	groups := env.Svc.Book().UpcomingBirthdays(env.Svc.Now(), days)
	if len(groups) == 0 {
		return "No upcoming birthdays found.", nil
	}
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("%s: %s", Heading(g.Day.String()), strings.Join(g.Names, ", ")))
	}
	return strings.Join(lines, "\n"), nil
}

func runAddEmail(ctx context.Context, env *Env, args []string) (string, error) {
	if err := wantArgs(args, 2, "add-email [name] [email]"); err != nil {
		return "", err
	}
	name, email := args[0], args[1]

	c, created, err := findOrCreate(env, name)
	if err != nil {
		return "", err
	}
	if owner := env.Svc.Book().FindByEmail(email); owner != nil && owner.ID != c.ID {
		if created {
			env.Svc.Book().Remove(c.ID)
		}
		return "", fmt.Errorf("email %q is already registered to contact %q", email, owner.Name)
	}
	if err := c.AddEmail(email); err != nil {
		if created {
			env.Svc.Book().Remove(c.ID)
		}
		return "", err
	}
	if created {
		return Success("Contact added."), nil
	}
	return Success("Contact updated."), nil
}

func runRemoveEmail(ctx context.Context, env *Env, args []string) (string, error) {
	if err := wantArgs(args, 2, "remove-email [name] [email]"); err != nil {
		return "", err
	}
	c, err := resolveContact(env, args[0])
	if err != nil {
		return "", err
	}
	if err := c.RemoveEmail(args[1]); err != nil {
		return "", err
	}
	return Success("Email removed."), nil
}

func runChangeEmail(ctx context.Context, env *Env, args []string) (string, error) {
	if err := wantArgs(args, 3, "change-email [name] [old_email] [new_email]"); err != nil {
		return "", err
	}
	c, err := resolveContact(env, args[0])
	if err != nil {
		return "", err
	}
	if err := c.EditEmail(args[1], args[2]); err != nil {
		return "", err
	}
	return Success("Email changed."), nil
}

func runAddAddress(ctx context.Context, env *Env, args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("not enough arguments. Expected: add-address [name] [address]")
	}
	address := strings.Join(args[1:], " ")

	c, created, err := findOrCreate(env, args[0])
	if err != nil {
		return "", err
	}
	if err := c.SetAddress(address); err != nil {
		if created {
			env.Svc.Book().Remove(c.ID)
		}
		return "", err
	}
	if created {
		return Success("Contact added."), nil
	}
	return Success("Contact updated."), nil
}

func runRemoveAddress(ctx context.Context, env *Env, args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("not enough arguments. Expected: remove-address [name] [address]")
	}
	c, err := resolveContact(env, args[0])
	if err != nil {
		return "", err
	}
	if err := c.RemoveAddress(strings.Join(args[1:], " ")); err != nil {
		return "", err
	}
	return Success("Address removed."), nil
}

func runChangeAddress(ctx context.Context, env *Env, args []string) (string, error) {
	if err := wantArgs(args, 3, "change-address [name] [old_address] [new_address]"); err != nil {
		return "", err
	}
	c, err := resolveContact(env, args[0])
	if err != nil {
		return "", err
	}
	if err := c.EditAddress(args[1], args[2]); err != nil {
		return "", err
	}
	return Success("Address changed."), nil
}
