package application

import (
	"errors"
	"fmt"
)

const (
	// AppName is the application name used for the root command and messages
	AppName = "giteabak"

	// DefaultConfigFile is the config file looked up when the requested one is missing
	DefaultConfigFile = "config.ini"

	// DefaultFolder is where repositories and issues are written
	DefaultFolder = "backup/"

	// ExitFatal is the exit status for irrecoverable conditions
	ExitFatal = 2
)

// Version is overwritten at build time with -ldflags "-X ...application.Version=..."
var Version = "dev"

// ExitError carries a process exit status up to the command layer.
// Message is printed before exiting; it may be empty when the cause was already reported.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Fatal wraps err as an ExitError with ExitFatal status
func Fatal(err error, message string) *ExitError {
	return &ExitError{Code: ExitFatal, Message: message, Err: err}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}

	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status for err: 0 for nil, the ExitError code when present, 1 otherwise
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}
