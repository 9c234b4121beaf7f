package hotelerr

import (
	"errors"
	"fmt"
)

// Kind classifies a failed hotel operation.
type Kind string

const (
	KindDuplicateKey      Kind = "duplicate_key"
	KindNotFound          Kind = "not_found"
	KindInvalidDateRange  Kind = "invalid_date_range"
	KindInvalidTransition Kind = "invalid_state_transition"
	KindDateMismatch      Kind = "date_mismatch"
	KindConflict          Kind = "conflict"
	KindInternal          Kind = "internal"
)

// Error is the single error type returned by hotel operations.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Duplicatef(format string, args ...any) *Error {
	return New(KindDuplicateKey, format, args...)
}

func NotFoundf(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

func InvalidDatesf(format string, args ...any) *Error {
	return New(KindInvalidDateRange, format, args...)
}

func InvalidTransitionf(format string, args ...any) *Error {
	return New(KindInvalidTransition, format, args...)
}

func DateMismatchf(format string, args ...any) *Error {
	return New(KindDateMismatch, format, args...)
}

func Conflictf(format string, args ...any) *Error {
	return New(KindConflict, format, args...)
}

// Internalf wraps an underlying failure (database, lock) that callers should
// treat as a server-side error.
func Internalf(err error, format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the Kind from err, or KindInternal when err is not a hotel
// operation error.
func KindOf(err error) Kind {
	if err == nil {
		return Kind("")
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
