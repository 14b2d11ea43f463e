package myerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type httpError struct {
	status int
	err    error
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.status, e.err)
}

func (e httpError) Unwrap() error {
	return e.err
}

func newHTTPError(status int, err error) error {
	return httpError{
		status: status,
		err:    err,
	}
}

func NewInvalidInputError(err error) error {
	return newHTTPError(http.StatusBadRequest, err)
}

func NewInvalidInputErrorf(format string, a ...any) error {
	return newHTTPError(http.StatusBadRequest, fmt.Errorf(format, a...))
}

func NewAuthenticationError(err error) error {
	return newHTTPError(http.StatusForbidden, err)
}

func NewNotFoundError(err error) error {
	return newHTTPError(http.StatusNotFound, err)
}

func NewUnsupportedMediaTypeError(err error) error {
	return newHTTPError(http.StatusUnsupportedMediaType, err)
}

func NewInternalError(err error) error {
	return newHTTPError(http.StatusInternalServerError, err)
}

func NewNotImplementedError(err error) error {
	return newHTTPError(http.StatusNotImplemented, err)
}

func NewUnavailableError(err error) error {
	return newHTTPError(http.StatusServiceUnavailable, err)
}

// GetHTTPStatus returns the status carried by the error or 500 when it carries none.
func GetHTTPStatus(err error) int {
	he := httpError{}
	if errors.As(err, &he) {
		return he.status
	}

	return http.StatusInternalServerError
}
