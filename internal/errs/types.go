package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type AlreadyExistsError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// UnavailableError means the backend could not be reached or answered with a
// server-side failure. It is the only error the dashboard cache degrades on.
type UnavailableError struct {
	ErrorMessage
	Err error
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// APIError is a non-2xx answer from a live backend that fits no other type.
type APIError struct {
	ErrorMessage
	Status int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewAlreadyExistsError(message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUnavailableError(message string, err error) *UnavailableError {
	return &UnavailableError{
		ErrorMessage: ErrorMessage{Message: message},
		Err:          err,
	}
}

func NewAPIError(status int, message string) *APIError {
	return &APIError{
		ErrorMessage: ErrorMessage{Message: message},
		Status:       status,
	}
}
