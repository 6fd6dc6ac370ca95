package translator

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindConfiguration Kind = iota + 1
	KindTransport
	KindRemote
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindTransport:
		return "transport"
	case KindRemote:
		return "remote"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching against an *Error of the same kind.
var (
	ErrConfiguration = errors.New("translator: missing credentials")
	ErrTransport     = errors.New("translator: transport failure")
	ErrRemote        = errors.New("translator: remote error")
	ErrParse         = errors.New("translator: unexpected response")
)

// Error is the only error type returned by AzureService.
type Error struct {
	Kind   Kind
	Op     string
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Kind.String() + " error"
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrRemote:
		return e.Kind == KindRemote
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}

// KindOf reports the failure kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return 0
}
