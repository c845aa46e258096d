package abisig

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is returned when an ABI description lacks a field
	// needed to build its signature
	ErrMalformedInput = errors.New("malformed ABI input")

	// ErrHashFailure marks failures raised while hashing a signature
	ErrHashFailure = errors.New("hash failure")

	// ErrInvalidEncoding is returned for signatures that are not valid UTF-8
	ErrInvalidEncoding = errors.New("signature is not valid UTF-8")
)

// MalformedInputError reports the missing field and where it was expected
type MalformedInputError struct {
	Path  string
	Field string
}

func (e *MalformedInputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: missing %q", ErrMalformedInput, e.Field)
	}
	return fmt.Sprintf("%s: missing %q at %s", ErrMalformedInput, e.Field, e.Path)
}

func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}

// HashError wraps a failure to turn a signature into hashable bytes
type HashError struct {
	Signature string
	Err       error
}

func (e *HashError) Error() string {
	return fmt.Sprintf("%s for %q: %v", ErrHashFailure, e.Signature, e.Err)
}

func (e *HashError) Unwrap() []error {
	return []error{ErrHashFailure, e.Err}
}
