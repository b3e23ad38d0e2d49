package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andriiko/attache/internal/command"
)

// execCmd runs a single dispatcher command non-interactively, for scripting:
//
//	attache exec add John +380501234567
//	attache exec find-notes report +financial
var execCmd = &cobra.Command{
	Use:   "exec [command] [args...]",
	Short: "Run one assistant command and exit",
	Long: `Exec dispatches a single command exactly as the interactive prompt
would, then exits. Commands that would ask a follow-up question (ambiguous
names, create-contact) fail with instructions instead of prompting.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		svc, err := newService(ctx)
		if err != nil {
			return err
		}

		env := &command.Env{Svc: svc, BirthdayDays: cfg.BirthdayDays}
		registry := command.NewRegistry()

		// The shell already did the word splitting; hand its arguments
		// over untouched.
		result, err := registry.DispatchArgs(ctx, env, args)
		if err != nil {
			return err
		}
		if result != "" {
			fmt.Println(result)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
