// Package types provides shared types used across the nasalprom codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

import "errors"

// Instrument identifiers.
const (
	InstrumentNOSE   = "NOSE"
	InstrumentSNOT22 = "SNOT-22"
)

// ValidationError is the user-facing failure raised when answers cannot be
// turned into an output artifact. It is always recoverable at the UI boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// CompletionState classifies an answer set.
type CompletionState int

// Completion states.
const (
	StateEmpty CompletionState = iota
	StatePartial
	StateComplete
)

func (s CompletionState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePartial:
		return "partial"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Mode selects which instruments a serialization covers.
type Mode int

// Output modes.
const (
	ModeFull Mode = iota + 1
	ModeNoseOnly
	ModeSnotOnly
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeNoseOnly:
		return "nose-only"
	case ModeSnotOnly:
		return "snot-only"
	default:
		return "unknown"
	}
}

// TSVLabel is the caption placed above a TSV row in a composed message.
func (m Mode) TSVLabel() string {
	switch m {
	case ModeFull:
		return "FULL TSV:"
	case ModeNoseOnly:
		return "NOSE TSV only:"
	case ModeSnotOnly:
		return "SNOT-22 TSV only:"
	default:
		return ""
	}
}

// IncludesNOSE reports whether the mode carries NOSE columns.
func (m Mode) IncludesNOSE() bool {
	return m == ModeFull || m == ModeNoseOnly
}

// IncludesSNOT reports whether the mode carries SNOT-22 columns.
func (m Mode) IncludesSNOT() bool {
	return m == ModeFull || m == ModeSnotOnly
}
