package docgo

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedStep is returned for stepped slicing; callers needing a
	// stride must materialize tokens first.
	ErrUnsupportedStep = errors.New("docgo: slice step must be 1")
)

// ErrIndexOutOfRange indicates a token index outside the safe access window.
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("docgo: index %d out of range for document length %d", e.Index, e.Length)
}

// ErrLengthMismatch indicates a bulk annotation whose row count does not
// match the document length.
type ErrLengthMismatch struct {
	Want int
	Got  int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("docgo: expected %d rows, got %d", e.Want, e.Got)
}

// ErrMalformedInput indicates serialized document data that cannot be
// decoded against the given vocabulary.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMalformedInput struct {
	Reason string
	cause  error
}

func (e *ErrMalformedInput) Error() string {
	return fmt.Sprintf("docgo: malformed input: %s", e.Reason)
}

func (e *ErrMalformedInput) Unwrap() error { return e.cause }
