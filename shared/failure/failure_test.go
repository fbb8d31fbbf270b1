package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel/shared/failure"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("checkOutDate must be after checkInDate")), code: http.StatusBadRequest, message: "checkOutDate must be after checkInDate"},
		{name: "bad request from string", err: failure.BadRequestFromString("invalid user ID"), code: http.StatusBadRequest, message: "invalid user ID"},
		{name: "unauthorized", err: failure.Unauthorized("Token has expired"), code: http.StatusUnauthorized, message: "Token has expired"},
		{name: "forbidden", err: failure.Forbidden("You cannot delete your own account"), code: http.StatusForbidden, message: "You cannot delete your own account"},
		{name: "not found", err: failure.NotFound("booking not found"), code: http.StatusNotFound, message: "booking not found"},
		{name: "conflict", err: failure.Conflict("no Deluxe Room available"), code: http.StatusConflict, message: "no Deluxe Room available"},
		{name: "unavailable", err: failure.Unavailable("receipt generation failed"), code: http.StatusServiceUnavailable, message: "receipt generation failed"},
		{name: "predefined forbidden", err: failure.ForbiddenError, code: http.StatusForbidden, message: "You don't have the required permissions"},
		{name: "predefined restricted", err: failure.ResourceRestrictedError, code: http.StatusForbidden, message: "You don't have permission to access this resource"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.EqualError(t, tt.err, tt.message)
			assert.Nil(t, failure.GetDetails(tt.err))
		})
	}
}

func TestBadRequestNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestValidation(t *testing.T) {
	details := []string{"userName is required", "numberOfGuests must be at least 1"}
	err := failure.Validation(details)

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, details, failure.GetDetails(err))
	assert.EqualError(t, err, "userName is required; numberOfGuests must be at least 1")
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "plain error", err: errors.New("connection reset"), want: http.StatusInternalServerError},
		{name: "wrapped failure", err: fmt.Errorf("create booking: %w", failure.Conflict("full")), want: http.StatusConflict},
		{name: "nil", err: nil, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}
