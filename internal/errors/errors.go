package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/focusdeck/focusdeck/internal/logger"
)

// Engine failure kinds. Callers classify with errors.Is against these
// sentinels; the concrete message comes from the wrapping Error.
var (
	ErrInvalidInput = stderrors.New("invalid input")
	ErrNotFound     = stderrors.New("not found")
	ErrConflict     = stderrors.New("conflict")
)

// Error is a typed engine failure carrying one of the kind sentinels.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// InvalidInputf returns an ErrInvalidInput failure with a formatted message.
func InvalidInputf(format string, args ...interface{}) error {
	return &Error{kind: ErrInvalidInput, msg: fmt.Sprintf(format, args...)}
}

// NotFoundf returns an ErrNotFound failure with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return &Error{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// Conflictf returns an ErrConflict failure with a formatted message.
func Conflictf(format string, args ...interface{}) error {
	return &Error{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err carries the given kind sentinel.
func Is(err, kind error) bool {
	return stderrors.Is(err, kind)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
