// Package failure carries an HTTP status alongside an error so services can
// decide the response code without knowing about the transport.
package failure

import (
	"errors"
	"net/http"
	"strings"
)

// Failure is an error the client is allowed to see. Anything else reaching
// the response layer is reported as a 500.
type Failure struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

var (
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}
)

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// BadRequest turns err into a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

// Validation is a 400 listing every violated rule, one per detail.
func Validation(details []string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: strings.Join(details, "; "),
		Details: details,
	}
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg)
}

func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

// Conflict reports a request that is valid but clashes with current state,
// e.g. a terminal booking status or exhausted inventory.
func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// Unavailable reports a dependency that could not serve the request. The
// client may retry.
func Unavailable(msg string) error {
	return newFailure(http.StatusServiceUnavailable, msg)
}

func GetDetails(err error) []string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Details
	}

	return nil
}

// GetCode returns the status carried by err, or 500 when err is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
