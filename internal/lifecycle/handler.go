// Package lifecycle provides wrapper functions for CLI command execution. It
// captures the start time, runs the command, and reports the outcome and
// duration to a handler.
package lifecycle

import "time"

// NotificationHandler receives command completion events.
//
// The wrapper functions check for a nil handler before calling any method.
type NotificationHandler interface {
	// OnCommandComplete is called when a CLI command finishes execution.
	// Parameters:
	//   - name: the command name (e.g., "options", "plan")
	//   - err: the error returned by the command, nil on success
	//   - duration: how long the command took to execute
	OnCommandComplete(name string, err error, duration time.Duration)
}

// Run executes fn and reports its completion to handler. The error from fn is
// returned unchanged.
func Run(handler NotificationHandler, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	if handler != nil {
		handler.OnCommandComplete(name, err, time.Since(start))
	}
	return err
}
