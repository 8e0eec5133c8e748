package errs

import (
	"errors"
	"net/http"
)

// Error codes carried in the {code, message} body.
const (
	CodeNotFound      = "not_found"
	CodeAlreadyExists = "already_exists"
	CodeInvalidInput  = "invalid_input"
	CodeInternal      = "internal_error"
	CodeUnavailable   = "service_unavailable"
)

// FromStatus rebuilds a typed error from a backend response status. 5xx
// answers count as the backend being unavailable.
func FromStatus(status int, message string) error {
	switch {
	case status == http.StatusNotFound:
		return NewNotFoundError(message)
	case status == http.StatusConflict:
		return NewAlreadyExistsError(message)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return NewValidationError(message)
	case status >= http.StatusInternalServerError:
		return NewUnavailableError(message, NewAPIError(status, message))
	default:
		return NewAPIError(status, message)
	}
}

func IsUnavailable(err error) bool {
	var u *UnavailableError
	return errors.As(err, &u)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
