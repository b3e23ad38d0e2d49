package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var birthdayDays int

// birthdaysCmd is a one-shot window query, handy for cron or shell prompts.
var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "List upcoming birthdays",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		svc, err := newService(ctx)
		if err != nil {
			return err
		}

		days := birthdayDays
		if days <= 0 {
			days = cfg.BirthdayDays
		}

		groups := svc.Book().UpcomingBirthdays(svc.Now(), days)
		if len(groups) == 0 {
			fmt.Println("No upcoming birthdays found.")
			return nil
		}
		for _, g := range groups {
			fmt.Printf("%s: %s\n", g.Day, strings.Join(g.Names, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(birthdaysCmd)
	birthdaysCmd.Flags().IntVar(&birthdayDays, "days", 0, "Window size in days (default from ATTACHE_BIRTHDAY_DAYS or 7)")
}
