package command

import "github.com/fatih/color"

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// Success colors a confirmation line green.
func Success(msg string) string { return green(msg) }

// Failure colors an error line red.
func Failure(msg string) string { return red(msg) }

// Heading colors a label cyan.
func Heading(msg string) string { return cyan(msg) }

// DisableColor turns all coloring off, for NO_COLOR or non-terminal output.
func DisableColor() { color.NoColor = true }
