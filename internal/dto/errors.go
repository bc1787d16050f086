package dto

import (
	"errors"
)

var (
	ErrNotFound = errors.New("record not found")
)

// ValidationError carries a message meant for the person filling in a form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "required field '" + field + "'"}
}
