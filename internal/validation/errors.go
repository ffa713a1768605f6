package validation

import "errors"

var ErrValidation = errors.New("validation failed")

// Error is a rejected input. Message is written for the end user.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, message string) *Error {
	return &Error{Field: field, Message: message}
}
