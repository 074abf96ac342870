// Package logger wraps zerolog with the small API the rest of courgette uses.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	// Level is a zerolog level name; empty means info.
	Level string
	// HumanReadable selects console output. Nil picks it when Writer is a terminal.
	HumanReadable *bool
	Writer        io.Writer
}

// Logger writes structured log entries.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	human := isTerminal(writer)
	if opts.HumanReadable != nil {
		human = *opts.HumanReadable
	}

	var output io.Writer = writer
	if human {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: logger}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
