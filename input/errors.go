package input

import "errors"

// FetchErrorMessage is the diagnostic Expect and Expectf panic with when
// console I/O fails. Kept verbatim for parity with the original tool.
const FetchErrorMessage = "I/O error occured while fetching input"

// Kind discriminates the two failure classes of a typed fetch.
type Kind int

const (
	// KindFetch marks I/O failures from writing the prompt or reading the line.
	KindFetch Kind = iota + 1
	// KindParse marks the target type rejecting the fetched text.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindFetch:
		return "fetch"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Error tags a failure from Value, Valuef, Scan, or Scanf with the stage
// that produced it. Exactly one kind is set per instance, at construction;
// the underlying error is carried untouched.
type Error struct {
	kind Kind
	err  error
}

func newFetchError(err error) *Error { return &Error{kind: KindFetch, err: err} }
func newParseError(err error) *Error { return &Error{kind: KindParse, err: err} }

// Kind reports which stage failed.
func (e *Error) Kind() Kind { return e.kind }

// Error is transparent: the message is the underlying error's message.
func (e *Error) Error() string { return e.err.Error() }

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.err }

// IsFetch reports whether err is a typed-fetch failure caused by console I/O.
func IsFetch(err error) bool { return hasKind(err, KindFetch) }

// IsParse reports whether err is a typed-fetch failure caused by parsing.
func IsParse(err error) bool { return hasKind(err, KindParse) }

func hasKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == k
}
