package internal

import (
	"errors"
	"fmt"
)

// Process exit codes
const (
	ExitError       = 1
	ExitConfigError = 2
)

// ConfigurationError reports a missing or malformed bill source or config file
type ConfigurationError struct {
	Source string // source format, e.g. "json"
	Path   string
	Err    error
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Source != "" && e.Path != "":
		return fmt.Sprintf("%s %s: %v", e.Source, e.Path, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func configErrorf(source, path, format string, args ...any) error {
	return &ConfigurationError{Source: source, Path: path, Err: fmt.Errorf(format, args...)}
}

// IsConfigurationError returns true if err is or wraps a ConfigurationError
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if IsConfigurationError(err) {
		return ExitConfigError
	}
	return ExitError
}
