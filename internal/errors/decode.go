package errors

import "fmt"

// DecodeError represents a response body that is not valid JSON when JSON was required
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError for the given URL
func NewDecodeError(url string, err error) *DecodeError {
	return &DecodeError{URL: url, Err: err}
}
