package wincred

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when the target name does not exist in the store.
// Match with errors.Is; the concrete error is a *PlatformError carrying the
// native status code.
var ErrNotFound = errors.New("credential not found")

// ErrUnsupported is returned when the caller asks for a credential type or
// write flag this package does not implement. Match with errors.Is.
var ErrUnsupported = errors.New("unsupported operation")

// ErrUnsupportedPlatform is returned by New on builds without a native
// credential store backend.
var ErrUnsupportedPlatform = errors.New("windows credential store is not available on this platform")

// ValidationError reports a request that was rejected before any native
// call was made. Keys, when set, lists the unrecognized credential keys.
type ValidationError struct {
	Reason string
	Keys   []string
	cause  error
}

func (e *ValidationError) Error() string {
	if len(e.Keys) > 0 {
		return fmt.Sprintf("unsupported credential keys: %s", strings.Join(e.Keys, ", "))
	}
	return e.Reason
}

func (e *ValidationError) Unwrap() error { return e.cause }

// unsupportedf builds a ValidationError that matches ErrUnsupported.
func unsupportedf(format string, args ...any) *ValidationError {
	return &ValidationError{
		Reason: fmt.Sprintf(format, args...),
		cause:  ErrUnsupported,
	}
}

// PlatformError reports a non-success status from a native credential
// primitive. Op names the primitive, Code is the raw Win32 error code.
type PlatformError struct {
	Op   string
	Code uint32
	Err  error
}

func (e *PlatformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v (code %d)", e.Op, e.Err, e.Code)
	}
	return fmt.Sprintf("%s failed with code %d", e.Op, e.Code)
}

func (e *PlatformError) Unwrap() error { return e.Err }

// Is makes the native "element not found" status match ErrNotFound so
// callers can distinguish a missing target from other platform failures.
func (e *PlatformError) Is(target error) bool {
	return target == ErrNotFound && e.Code == errorNotFound
}

// EncodingError reports a secret byte sequence that could not be decoded
// under the active system code page. Always fatal to the current call.
type EncodingError struct {
	CodePage uint32
	Reason   string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot decode credential blob under code page %d: %s", e.CodePage, e.Reason)
}
