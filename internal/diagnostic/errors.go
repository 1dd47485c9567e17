package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a load-time error.
type Kind int

const (
	KindConfiguration Kind = iota + 1 // missing or empty required field
	KindDuplicate                     // type, property or namespace declared twice
	KindUnresolved                    // reference not found in the compiled program
	KindIO                            // document unreadable or malformed
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindDuplicate:
		return "duplicate"
	case KindUnresolved:
		return "unresolved"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Code returns the diagnostic code used for this kind.
func (k Kind) Code() string {
	switch k {
	case KindConfiguration:
		return "configuration_error"
	case KindDuplicate:
		return "duplicate_declaration"
	case KindUnresolved:
		return "unresolved_reference"
	case KindIO:
		return "io_error"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. An *Error matches the sentinel of its kind.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrDuplicate     = errors.New("duplicate declaration")
	ErrUnresolved    = errors.New("unresolved reference")
	ErrIO            = errors.New("io error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindConfiguration:
		return ErrConfiguration
	case KindDuplicate:
		return ErrDuplicate
	case KindUnresolved:
		return ErrUnresolved
	case KindIO:
		return ErrIO
	default:
		return nil
	}
}

// Error is a load-time failure.
type Error struct {
	Kind Kind
	// Source identifies the originating document (usually a file path).
	Source string
	// Entity is the fully qualified name of the offending namespace, type or property.
	Entity  string
	Message string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder

	if e.Source != "" {
		b.WriteString(e.Source)
		b.WriteString(": ")
	}

	if sentinel := e.Kind.sentinel(); sentinel != nil {
		b.WriteString(sentinel.Error())
	} else {
		b.WriteString("error")
	}

	if e.Entity != "" {
		fmt.Fprintf(&b, " [%s]", e.Entity)
	}

	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// WithSource returns a copy of e attributed to source, unless e already has one.
func (e *Error) WithSource(source string) *Error {
	if e.Source != "" {
		return e
	}

	c := *e
	c.Source = source

	return &c
}

// Configuration returns a KindConfiguration error.
func Configuration(entity, format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Entity: entity, Message: fmt.Sprintf(format, args...)}
}

// Duplicate returns a KindDuplicate error naming entity.
func Duplicate(entity, what string) *Error {
	return &Error{Kind: KindDuplicate, Entity: entity, Message: what + " is already declared"}
}

// Unresolved returns a KindUnresolved error naming the missing key.
func Unresolved(entity, what string) *Error {
	return &Error{Kind: KindUnresolved, Entity: entity, Message: what + " not found in compiled program"}
}

// IO wraps a transport-level failure reading source.
func IO(source string, err error) *Error {
	return &Error{Kind: KindIO, Source: source, Err: err}
}

// KindOf returns the kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
