// Package errs defines the error taxonomy shared by every typeset package:
// ParseError, LoadError and RenderError are ordinary values the caller is
// expected to handle; InternalInvariant panics, since it signals a bug in
// the engine rather than bad input.
package errs

import "fmt"

// Kind classifies a surfaced error so callers can switch on it with
// errors.As without depending on a specific package's error type.
type Kind int

const (
	KindParse Kind = iota
	KindLoad
	KindRender
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "ParseError"
	case KindLoad:
		return "LoadError"
	case KindRender:
		return "RenderError"
	default:
		return "UnknownError"
	}
}

// Error wraps an underlying cause with the operation that produced it and a
// Kind, so a caller can do `var e *errs.Error; errors.As(err, &e)`.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func Parse(op string, err error) error {
	return &Error{Kind: KindParse, Op: op, Err: err}
}

func Parsef(op, format string, args ...any) error {
	return &Error{Kind: KindParse, Op: op, Err: fmt.Errorf(format, args...)}
}

func Load(op string, err error) error {
	return &Error{Kind: KindLoad, Op: op, Err: err}
}

func Loadf(op, format string, args ...any) error {
	return &Error{Kind: KindLoad, Op: op, Err: fmt.Errorf(format, args...)}
}

func Render(op string, err error) error {
	return &Error{Kind: KindRender, Op: op, Err: err}
}

func Renderf(op, format string, args ...any) error {
	return &Error{Kind: KindRender, Op: op, Err: fmt.Errorf(format, args...)}
}

// Invariant is the panic value raised for InternalInvariant violations:
// inconsistent element state the engine should never produce from
// well-formed input. Callers are not expected to recover from it.
type Invariant struct {
	Op     string
	Detail string
}

func (e *Invariant) Error() string {
	return fmt.Sprintf("InternalInvariant: %s: %s", e.Op, e.Detail)
}

// Raise panics with an *Invariant. Use for conditions that should not
// occur on well-formed input - a bidi run that never closes, an
// unexpected element kind reaching the kerning pass, and so on.
func Raise(op, detail string) {
	panic(&Invariant{Op: op, Detail: detail})
}
