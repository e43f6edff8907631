package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error so the HTTP layer can map it to a status code
// without inspecting message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error carries a kind alongside the wrapped cause. Construct via the
// helpers below so %w chains stay intact.
type Error struct {
	kind Kind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, err: fmt.Errorf(format, args...)}
}

// Validationf reports malformed input: negative price, unknown module name,
// missing required field, invalid date ordering.
func Validationf(format string, args ...any) *Error {
	return newf(KindValidation, format, args...)
}

// NotFoundf reports a missing referenced entity.
func NotFoundf(format string, args ...any) *Error {
	return newf(KindNotFound, format, args...)
}

// Conflictf reports a mutation that would break a referential invariant.
func Conflictf(format string, args ...any) *Error {
	return newf(KindConflict, format, args...)
}

// Internal wraps a storage or infrastructure failure. The message is surfaced
// opaquely; detail stays in logs.
func Internal(err error) *Error {
	return &Error{kind: KindInternal, err: err}
}

// Internalf wraps a storage failure with context, preserving %w chains.
func Internalf(format string, args ...any) *Error {
	return newf(KindInternal, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal
// when none is present.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

// Is reports whether err's chain contains an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}
