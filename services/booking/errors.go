package booking

import "fmt"

// NotFoundError reports an unknown restaurant or reservation ID.
type NotFoundError struct {
	Resource string // "restaurant" or "reservation"
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// ValidationError reports a missing or malformed booking field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
