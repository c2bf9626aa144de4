package services

import (
	"errors"
	"fmt"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrWorkOrderNotFound = errors.New("work order not found")
	ErrDuplicateMobile   = errors.New("client with this mobile number already exists")
)

// ValidationError marks bad input so handlers can answer 400 instead of 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
