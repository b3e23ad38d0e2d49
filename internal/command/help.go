package command

import (
	"context"
	"fmt"
	"strings"
)

func (r *Registry) runHelp(ctx context.Context, env *Env, args []string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("too many arguments. Expected: help [command]")
	}

	if len(args) == 1 {
		name := strings.ToLower(args[0])
		cmd, ok := r.commands[name]
		if !ok {
			return "", fmt.Errorf("command %q not found", name)
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s %s\n", Heading("Command:"), cmd.Name)
		fmt.Fprintf(&sb, "%s %s\n", Heading("Usage:"), cmd.Usage)
		fmt.Fprintf(&sb, "%s %s\n", Heading("Description:"), cmd.Desc)
		fmt.Fprintf(&sb, "%s %s", Heading("Example:"), cmd.Example)
		return sb.String(), nil
	}

	lines := make([]string, 0, len(r.order))
	for _, name := range r.order {
		lines = append(lines, fmt.Sprintf("%s %s", Heading(name+":"), r.commands[name].Desc))
	}
	lines = append(lines, fmt.Sprintf("%s Quit the assistant.", Heading("exit, close:")))
	return strings.Join(lines, "\n"), nil
}
