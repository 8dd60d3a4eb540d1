package output

import (
	"errors"
	"fmt"

	"github.com/semmy-space/credman/pkg/wincred"
)

// Exit codes following sysexits.h convention
const (
	ExitOK          = 0  // Success
	ExitGeneral     = 1  // General error
	ExitUsage       = 2  // Invalid usage / bad arguments
	ExitNotFound    = 4  // Credential not found
	ExitPlatform    = 5  // Native credential store failure
	ExitEncoding    = 6  // Secret could not be decoded under the system code page
	ExitUnsupported = 7  // Operation not available (non-generic type, non-zero flag, wrong platform)
	ExitConfigError = 10 // Configuration error
)

// CLIError represents a structured error with exit code and optional hint
type CLIError struct {
	ExitCode int
	Message  string
	Hint     string
}

// Error implements the error interface
func (e *CLIError) Error() string {
	return e.Message
}

// NewCLIError creates a new CLIError
func NewCLIError(code int, msg string) *CLIError {
	return &CLIError{
		ExitCode: code,
		Message:  msg,
	}
}

// WithHint adds a user-facing hint to the error
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// FromStoreError maps the credential store error taxonomy onto CLI exit
// codes, adding hints where a next step exists.
func FromStoreError(err error) *CLIError {
	var verr *wincred.ValidationError
	var perr *wincred.PlatformError
	var eerr *wincred.EncodingError

	switch {
	case errors.Is(err, wincred.ErrUnsupportedPlatform):
		return NewCLIError(ExitUnsupported, err.Error()).
			WithHint("credman talks to the Windows credential store and only works on Windows")
	case errors.Is(err, wincred.ErrNotFound):
		return NewCLIError(ExitNotFound, err.Error()).
			WithHint("run: credman list")
	case errors.Is(err, wincred.ErrUnsupported):
		return NewCLIError(ExitUnsupported, err.Error())
	case errors.As(err, &verr):
		return NewCLIError(ExitUsage, err.Error())
	case errors.As(err, &eerr):
		return NewCLIError(ExitEncoding, err.Error()).
			WithHint("pass the secret as text instead of raw bytes")
	case errors.As(err, &perr):
		return NewCLIError(ExitPlatform, err.Error())
	default:
		return NewCLIError(ExitGeneral, fmt.Sprintf("error: %v", err))
	}
}
