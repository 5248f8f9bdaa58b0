package errs

import (
	"errors"
	"fmt"
)

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// IntegrityError marks broken static resources. These are surfaced at
// startup and never retried.
type IntegrityError struct {
	ErrorMessage
}

// DatabaseError wraps a failure of a configuration store backend.
type DatabaseError struct {
	ErrorMessage
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewIntegrityError(message string) *IntegrityError {
	return &IntegrityError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewDatabaseError(op, message string, err error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Op:           op,
		Err:          err,
	}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsIntegrity(err error) bool {
	var target *IntegrityError
	return errors.As(err, &target)
}

func IsDatabase(err error) bool {
	var target *DatabaseError
	return errors.As(err, &target)
}
