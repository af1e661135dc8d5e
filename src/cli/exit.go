package cli

import (
	"errors"

	"github.com/jackwink/weather/src/client"
	"github.com/jackwink/weather/src/settings"
)

// Process exit codes
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitConfigError  = 2
	ExitConnError    = 3
	ExitAuthError    = 4
	ExitNotFound     = 5
	ExitUsageError   = 64
)

// ExitError is an error that carries the process exit code to use.
type ExitError struct {
	Message string
	Code    int
}

func (e *ExitError) Error() string {
	return e.Message
}

// NewUsageError creates a usage error (exit code 64)
func NewUsageError(message string) *ExitError {
	return &ExitError{Message: message, Code: ExitUsageError}
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		exitErr   *ExitError
		cfgErr    *settings.ConfigurationError
		connErr   *client.ConnectionError
		statusErr *client.StatusError
		lookupErr *client.LookupError
		ambErr    *client.AmbiguousLocationError
	)
	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.As(err, &cfgErr):
		return ExitConfigError
	case errors.As(err, &connErr):
		return ExitConnError
	case errors.As(err, &statusErr):
		if statusErr.Unauthorized() {
			return ExitAuthError
		}
		if statusErr.NotFound() {
			return ExitNotFound
		}
		return ExitGeneralError
	case errors.As(err, &lookupErr):
		return ExitNotFound
	case errors.As(err, &ambErr):
		return ExitUsageError
	}
	return ExitGeneralError
}
