package errors

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

var (
	// ErrRoleNotFound is returned when a role id does not match any stored role.
	ErrRoleNotFound = errors.New("role not found")
	// ErrEmailAlreadyRegistered is returned when the email belongs to an existing user.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrInvalidRoleID is returned when a role id path value is not an integer.
	ErrInvalidRoleID = errors.New("invalid role id")
)

const internalMessage = "internal server error"

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Internal   error
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *HTTPError) Unwrap() error {
	return e.Internal
}

// Wrap returns a copy of e carrying err as its internal cause.
func (e *HTTPError) Wrap(err error) *HTTPError {
	wrapped := *e
	wrapped.Internal = err
	return &wrapped
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Detail: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrRoleNotFound):
		return NewHTTPError(http.StatusNotFound, ErrRoleNotFound.Error())
	case errors.Is(err, ErrEmailAlreadyRegistered):
		return NewHTTPError(http.StatusBadRequest, ErrEmailAlreadyRegistered.Error())
	case errors.Is(err, ErrInvalidRoleID):
		return NewHTTPError(http.StatusUnprocessableEntity, ErrInvalidRoleID.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, internalMessage)
	}
}

// HTTPErrorHandler renders every error returned by a handler as {"detail": "..."}.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	httpErr := resolve(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		cause := err
		if httpErr.Internal != nil {
			cause = httpErr.Internal
		}
		log.Error().Err(cause).
			Str("method", c.Request().Method).
			Str("uri", c.Request().RequestURI).
			Msg("request failed")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(httpErr.StatusCode)
	} else {
		writeErr = c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if writeErr != nil {
		log.Error().Err(writeErr).Msg("write error response")
	}
}

func resolve(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return NewHTTPError(http.StatusUnprocessableEntity, validationErrs.Error())
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		msg := http.StatusText(echoErr.Code)
		switch m := echoErr.Message.(type) {
		case string:
			msg = m
		case ErrorResponse:
			msg = m.Detail
		}
		if echoErr.Code >= http.StatusInternalServerError {
			msg = internalMessage
		}
		return NewHTTPError(echoErr.Code, msg)
	}

	return MapErrorToHTTP(err)
}
