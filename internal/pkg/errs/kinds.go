package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Fault kinds surfaced to the request boundary. Each fault is a message error
// marked with one of these, so the message stays exactly what the caller sees.
var (
	ErrNotFound     = cr.New("not found")
	ErrValidation   = cr.New("validation failed")
	ErrUnknownState = cr.New("unknown state")
)

type Kind string

const (
	KindNone         Kind = ""
	KindNotFound     Kind = "NOT_FOUND"
	KindValidation   Kind = "VALIDATION"
	KindUnknownState Kind = "UNKNOWN_STATE"
)

func NotFoundf(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrNotFound)
}

func Validationf(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrValidation)
}

func UnknownState(token string) error {
	return cr.Mark(cr.Newf("Unknown state: %s", token), ErrUnknownState)
}

func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case Is(err, ErrNotFound):
		return KindNotFound
	case Is(err, ErrValidation):
		return KindValidation
	case Is(err, ErrUnknownState):
		return KindUnknownState
	default:
		return KindNone
	}
}

// Message returns the outermost message without wrapping prefixes added by
// intermediate layers or the stack trace.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return cr.UnwrapAll(err).Error()
}
