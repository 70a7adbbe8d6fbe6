package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/specsmith/specsync/internal/domain/spec"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable
// hints. Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var headerErr *spec.MalformedHeaderError
	if errors.As(err, &headerErr) {
		return NewCLIError(
			headerErr.Error(),
			"The document must start with a '---' delimited frontmatter block carrying spec_id and feature",
			err,
		)
	}

	if errors.Is(err, os.ErrNotExist) {
		return NewCLIError("file or directory not found", "Check the path and run from the workspace root", err)
	}

	return err
}
