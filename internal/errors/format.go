package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// palette renders the parts of an error report. The zero value is plain text.
type palette struct {
	label, message, category, fix, usage, bullet func(a ...interface{}) string
}

func plain(a ...interface{}) string { return fmt.Sprint(a...) }

var (
	plainPalette = palette{
		label: plain, message: plain, category: plain,
		fix: plain, usage: plain, bullet: plain,
	}
	colorPalette = palette{
		label:    color.New(color.FgRed, color.Bold).SprintFunc(),
		message:  color.New(color.FgRed).SprintFunc(),
		category: color.New(color.FgYellow).SprintFunc(),
		fix:      color.New(color.FgGreen, color.Bold).SprintFunc(),
		usage:    color.New(color.FgCyan).SprintFunc(),
		bullet:   color.New(color.FgGreen).SprintFunc(),
	}
)

// FormatError formats a CLIError for display in the terminal. Colors are
// dropped automatically when stdout is not a terminal.
func FormatError(err *CLIError) string {
	return formatError(err, colorPalette)
}

// FormatErrorPlain formats a CLIError without colors.
func FormatErrorPlain(err *CLIError) string {
	return formatError(err, plainPalette)
}

// formatError renders:
//
//	Error [Category]: message
//
//	Usage: usage
//
//	To fix this:
//	  • step
func formatError(err *CLIError, p palette) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s]: %s\n", p.label("Error"), p.category(err.Category.String()), p.message(err.Message))

	if err.Usage != "" {
		fmt.Fprintf(&sb, "\n%s %s\n", p.usage("Usage:"), p.usage(err.Usage))
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", p.fix("To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&sb, "  %s %s\n", p.bullet("•"), step)
		}
	}

	return sb.String()
}

// FprintError prints a formatted CLIError to the given writer.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
