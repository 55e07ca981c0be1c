package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "role not found", err: ErrRoleNotFound, status: http.StatusNotFound, message: "role not found"},
		{name: "wrapped role not found", err: fmt.Errorf("lookup: %w", ErrRoleNotFound), status: http.StatusNotFound, message: "role not found"},
		{name: "duplicate email", err: ErrEmailAlreadyRegistered, status: http.StatusBadRequest, message: "email already registered"},
		{name: "invalid role id", err: ErrInvalidRoleID, status: http.StatusUnprocessableEntity, message: "invalid role id"},
		{name: "anything else", err: errors.New("dial tcp: connection refused"), status: http.StatusInternalServerError, message: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.message, httpErr.Message)
			assert.Equal(t, ErrorResponse{Detail: tt.message}, httpErr.ToErrorResponse())
		})
	}
}

func TestHTTPError_Wrap(t *testing.T) {
	cause := errors.New("boom")
	base := MapErrorToHTTP(cause)

	wrapped := base.Wrap(cause)

	assert.Nil(t, base.Internal)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "internal server error", wrapped.Error())
}

func TestHTTPErrorHandler(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}
	validationErr := validator.New().Struct(payload{})
	require.Error(t, validationErr)

	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{name: "domain error", err: ErrRoleNotFound, status: http.StatusNotFound, detail: "role not found"},
		{name: "http error", err: NewHTTPError(http.StatusBadRequest, "email already registered"), status: http.StatusBadRequest, detail: "email already registered"},
		{name: "validation error", err: validationErr, status: http.StatusUnprocessableEntity},
		{name: "echo not found", err: echo.ErrNotFound, status: http.StatusNotFound, detail: "Not Found"},
		{name: "echo internal error hides message", err: echo.NewHTTPError(http.StatusInternalServerError, "secret"), status: http.StatusInternalServerError, detail: "internal server error"},
		{name: "unknown error", err: errors.New("database is down"), status: http.StatusInternalServerError, detail: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			HTTPErrorHandler(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Contains(t, body, "detail")
			if tt.detail != "" {
				assert.Equal(t, tt.detail, body["detail"])
			} else {
				assert.NotEmpty(t, body["detail"])
			}
		})
	}
}
