package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput reports a row that is not a valid PriceBar.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInsufficientData reports an empty series at classification time.
	ErrInsufficientData = errors.New("insufficient data")
)

// MalformedInputError locates the offending row and field.
type MalformedInputError struct {
	Line   int
	Field  string
	Value  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed input at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed input at line %d, %s=%q: %s", e.Line, e.Field, e.Value, e.Reason)
}

func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }
