// Package errors provides structured error handling for tick conversions.
//
// Every failure carries an [ErrorKind]. Callers usually only need to match
// the kind with the standard library:
//
//	if stderrors.Is(err, errors.ErrInvalidFrameRate) { ... }
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidFrameRate indicates a frame rate that is non-positive or
	// does not evenly divide the tick resolution.
	KindInvalidFrameRate
	// KindInvalidInput indicates a conversion input that is not finite or
	// otherwise not representable.
	KindInvalidInput
	// KindOverflow indicates arithmetic that would leave the int64 range.
	KindOverflow
	// KindParsing indicates a malformed textual tick or frame rate.
	KindParsing
	// KindConfig indicates an invalid tick.yaml.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidFrameRate:
		return "invalid frame rate"
	case KindInvalidInput:
		return "invalid input"
	case KindOverflow:
		return "overflow"
	case KindParsing:
		return "parsing"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// kindError is the sentinel type behind the Err* values.
type kindError struct {
	kind ErrorKind
}

func (e *kindError) Error() string {
	return e.kind.String()
}

// Is lets ErrOverflow match ErrInvalidInput.
func (e *kindError) Is(target error) bool {
	return e.kind == KindOverflow && target == ErrInvalidInput
}

// Sentinels for use with errors.Is.
var (
	ErrInvalidFrameRate error = &kindError{KindInvalidFrameRate}
	ErrInvalidInput     error = &kindError{KindInvalidInput}
	ErrOverflow         error = &kindError{KindOverflow}
	ErrParsing          error = &kindError{KindParsing}
	ErrConfig           error = &kindError{KindConfig}
)

// TickError represents a failed conversion or validation.
type TickError struct {
	// Op is the operation that failed (e.g., "tick.FromSeconds").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Value is the offending input, if any.
	Value any
	// Err is the underlying error, if any.
	Err error
	// StackTrace contains the call stack when the error was reported.
	StackTrace string
	// Timestamp is when the error was reported.
	Timestamp time.Time
}

// New returns a TickError for op with the given kind and offending value.
func New(op string, kind ErrorKind, value any) *TickError {
	return &TickError{Op: op, Kind: kind, Value: value}
}

// Wrap returns a TickError for op that wraps err.
func Wrap(op string, kind ErrorKind, value any, err error) *TickError {
	return &TickError{Op: op, Kind: kind, Value: value, Err: err}
}

func (e *TickError) Error() string {
	switch {
	case e.Value != nil && e.Err != nil:
		return fmt.Sprintf("%s [%s] %v: %v", e.Op, e.Kind, e.Value, e.Err)
	case e.Value != nil:
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Value)
	case e.Err != nil:
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
	}
}

func (e *TickError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind. Overflow is a
// special case of invalid input and matches both sentinels.
func (e *TickError) Is(target error) bool {
	k, ok := target.(*kindError)
	if !ok {
		return false
	}
	if k.kind == e.Kind {
		return true
	}
	return e.Kind == KindOverflow && k.kind == KindInvalidInput
}

// ErrorHandler receives errors reported by tick tooling.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *TickError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "main").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}
