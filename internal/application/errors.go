package application

import (
	"errors"
	"fmt"
	"strings"

	"docvault/internal/domain"
)

// Kind classifies a store failure. The values double as the wire-level
// error codes surfaced to CLI and MCP callers.
type Kind string

const (
	KindValidation        Kind = "VALIDATION_ERROR"
	KindBoundaryViolation Kind = "BOUNDARY_VIOLATION"
	KindNotFound          Kind = "NOT_FOUND"
	KindDirectoryNotEmpty Kind = "DIRECTORY_NOT_EMPTY"
	KindHashMismatch      Kind = "HASH_MISMATCH"
	KindFS                Kind = "FS_ERROR"
)

// Sentinel errors for matching with errors.Is.
var (
	ErrValidation        = errors.New("validation error")
	ErrBoundaryViolation = errors.New("boundary violation")
	ErrNotFound          = errors.New("not found")
	ErrDirectoryNotEmpty = errors.New("directory not empty")
	ErrHashMismatch      = errors.New("hash mismatch")
	ErrFS                = errors.New("filesystem error")
)

var kindSentinels = map[Kind]error{
	KindValidation:        ErrValidation,
	KindBoundaryViolation: ErrBoundaryViolation,
	KindNotFound:          ErrNotFound,
	KindDirectoryNotEmpty: ErrDirectoryNotEmpty,
	KindHashMismatch:      ErrHashMismatch,
	KindFS:                ErrFS,
}

// StoreError is the structured error every store operation reports: a kind,
// a message, and the offending path/scope details when known.
type StoreError struct {
	Kind    Kind
	Message string
	Path    string       // relative path, when known
	Abs     string       // resolved absolute path, when known
	Scope   domain.Scope // scope the operation ran against, when known
	cause   error
}

func (e *StoreError) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Kind))
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Path != "" {
		fmt.Fprintf(&sb, " (path=%s", e.Path)
		if e.Scope != "" {
			fmt.Fprintf(&sb, ", scope=%s", e.Scope)
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// Is lets errors.Is match a StoreError against its kind sentinel.
func (e *StoreError) Is(target error) bool {
	return target == kindSentinels[e.Kind]
}

func (e *StoreError) Unwrap() error {
	return e.cause
}

// Errorf builds a StoreError with a formatted message. Wrapped errors in
// the arguments become the cause.
func Errorf(kind Kind, format string, args ...any) *StoreError {
	err := fmt.Errorf(format, args...)
	return &StoreError{
		Kind:    kind,
		Message: err.Error(),
		cause:   errors.Unwrap(err),
	}
}

// At attaches path/scope details to the error and returns it.
func (e *StoreError) At(path string, scope domain.Scope) *StoreError {
	e.Path = path
	e.Scope = scope
	return e
}

// Resolved attaches the resolved absolute path.
func (e *StoreError) Resolved(abs string) *StoreError {
	e.Abs = abs
	return e
}

// KindOf extracts the kind from an error chain, or "" if no StoreError is
// present.
func KindOf(err error) Kind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
