package errors

// ValidationError represents a record that fails a required-field invariant,
// e.g. an empty title after cleanup. Per-item only, never fatal to a crawl.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a new ValidationError for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
