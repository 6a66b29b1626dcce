package errors

import "fmt"

// ParseError represents a malformed embedded-script or linked-data payload.
// It is always recovered locally: the offending page yields no records and
// extraction continues.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError for the given payload source
func NewParseError(source string, err error) *ParseError {
	return &ParseError{Source: source, Err: err}
}
