package cli

// Exit codes for the courgette CLI
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitRuntime indicates an unexpected failure while running a command
	ExitRuntime = 1

	// ExitConfiguration indicates the options file, a property override or a
	// companion file is missing or invalid
	ExitConfiguration = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3
)
