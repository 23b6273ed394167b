package weather

import (
	"errors"
	"fmt"
)

// Kind classifies failures so callers can decide how to react without
// inspecting message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindAuth
	KindRateLimited
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAuth:
		return "auth"
	case KindRateLimited:
		return "rate_limited"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown_upstream"
	}
}

// Error is the typed failure returned by resolvers and providers.
type Error struct {
	Kind Kind
	Op   string // e.g. "openweather.forecast"
	Msg  string
	Err  error
}

var (
	// ErrValidation matches any Error of KindValidation via errors.Is.
	ErrValidation = &Error{Kind: KindValidation}
	// ErrNotFound matches any Error of KindNotFound.
	ErrNotFound = &Error{Kind: KindNotFound}
	// ErrAuth matches any Error of KindAuth.
	ErrAuth = &Error{Kind: KindAuth}
	// ErrRateLimited matches any Error of KindRateLimited.
	ErrRateLimited = &Error{Kind: KindRateLimited}
	// ErrTimeout matches any Error of KindTimeout.
	ErrTimeout = &Error{Kind: KindTimeout}
	// ErrUnknownUpstream matches any Error of KindUnknown.
	ErrUnknownUpstream = &Error{Kind: KindUnknown}
)

// NewError builds an Error of the given kind.
func NewError(kind Kind, op, msg string, err error) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg, Err: err}
}

// Validationf is a shorthand for input validation failures.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports kind equality, so the package-level sentinels match any Error of
// the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
