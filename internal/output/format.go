// Package output provides terminal output formatting utilities for the
// relnext CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintVersion prints the computed version with a green checkmark and the
// trigger detail dimmed.
func PrintVersion(out io.Writer, version, detail string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	if detail == "" {
		fmt.Fprintf(out, "%s %s\n", green("✓"), version)
		return
	}
	fmt.Fprintf(out, "%s %s %s\n", green("✓"), version, dim("("+detail+")"))
}

// PrintSuccess prints a colored success line.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// PrintWatch prints a dimmed watch-mode status line.
func PrintWatch(out io.Writer, message string) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "%s\n", dim(message))
}

// Rule prints a dimmed horizontal separator labelled with the program
// name, sized to the terminal.
func Rule(out io.Writer, label string) {
	dim := color.New(color.FgMagenta, color.Faint).SprintFunc()

	width := GetTerminalWidth()
	text := " " + label + " "
	lineLen := (width - len(text)) / 2
	if lineLen < 3 {
		lineLen = 3
	}

	line := strings.Repeat("─", lineLen)
	fmt.Fprintf(out, "%s%s%s\n", dim(line), dim(text), dim(line))
}
