// Package output provides terminal output formatting utilities for the courgette CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	headingFmt = color.New(color.FgCyan, color.Bold).SprintFunc()
	labelFmt   = color.New(color.FgYellow).SprintFunc()
	successFmt = color.New(color.FgGreen, color.Bold).SprintFunc()
	valueFmt   = color.New(color.FgGreen).SprintFunc()
	dimFmt     = color.New(color.Faint).SprintFunc()
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintHeading prints a bold cyan heading line.
func PrintHeading(out io.Writer, heading string) {
	fmt.Fprintln(out, headingFmt(heading))
}

// PrintLabeled prints "label value" with the label padded to width and colored.
func PrintLabeled(out io.Writer, indent, width int, label, value string) {
	fmt.Fprintf(out, "%s%s %s\n", strings.Repeat(" ", indent), labelFmt(fmt.Sprintf("%-*s", width, label)), value)
}

// PrintSuccess prints a green checkmark followed by message.
func PrintSuccess(out io.Writer, message string) {
	fmt.Fprintf(out, "%s %s\n", successFmt("✓"), message)
}

// PrintSeparator prints a dim rule as wide as the terminal, capped at 80 columns.
func PrintSeparator(out io.Writer) {
	fmt.Fprintln(out, dimFmt(strings.Repeat("─", min(GetTerminalWidth(), 80))))
}

// Dim renders s faint.
func Dim(s string) string {
	return dimFmt(s)
}

// Value renders s as a highlighted value.
func Value(s string) string {
	return valueFmt(s)
}
