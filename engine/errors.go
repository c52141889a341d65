package engine

import "fmt"

// NotFoundError is returned when a referenced entity or a required result set
// does not exist.
type NotFoundError struct {
	message string
}

// Error returns the error message for a NotFoundError.
func (e NotFoundError) Error() string {
	return e.message
}

// NewNotFoundError returns a new error indicating that something wasn't found.
func NewNotFoundError(formatString string, a ...interface{}) NotFoundError {
	return NotFoundError{message: fmt.Sprintf(formatString, a...)}
}

// InvalidInputError is returned when a request is missing a required field or a
// field is malformed.
type InvalidInputError struct {
	message string
}

// Error returns the error message for an InvalidInputError.
func (e InvalidInputError) Error() string {
	return e.message
}

// NewInvalidInputError returns a new error indicating that a request was invalid.
func NewInvalidInputError(formatString string, a ...interface{}) InvalidInputError {
	return InvalidInputError{message: fmt.Sprintf(formatString, a...)}
}
