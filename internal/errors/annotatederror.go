// Package errors provides error wrapping that carries [slog.Attr] annotations
// alongside the message, so that context gathered while unwinding the stack
// ends up in the logs at the spot where the error is finally handled.
package errors

import (
	stderrors "errors"
	"log/slog"
)

// annotatedError is an error with an optional wrapped cause and slog
// annotations describing the situation where it occurred.
type annotatedError struct {
	msg     string
	attrs   []slog.Attr
	wrapped error
}

func (e *annotatedError) Error() string {
	if e.wrapped == nil {
		return e.msg
	}
	return e.msg + ": " + e.wrapped.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.wrapped
}

// NewSentinel creates a new error without a cause. Use it for package-level
// sentinel errors that are matched with [Is].
func NewSentinel(msg string, attrs ...slog.Attr) error {
	return &annotatedError{msg: msg, attrs: attrs, wrapped: nil}
}

// Wrap annotates err with a message and optional [slog.Attr].
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{msg: msg, attrs: attrs, wrapped: err}
}

// SlogError renders err as a [slog.Attr] including every annotation gathered
// along the wrap chain.
func SlogError(err error) slog.Attr {
	attrs := []any{slog.String("message", err.Error())}
	for err != nil {
		var annotated *annotatedError
		if stderrors.As(err, &annotated) {
			for _, attr := range annotated.attrs {
				attrs = append(attrs, attr)
			}
			err = annotated.wrapped
			continue
		}
		err = stderrors.Unwrap(err)
	}
	return slog.Group("error", attrs...)
}

// Is reports whether any error in err's tree matches target. See [errors.Is].
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target. See [errors.As].
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err. See
// [errors.Unwrap].
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join wraps the given errors into one. See [errors.Join].
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}
