// Package response writes the JSON envelopes shared by every endpoint:
// {"data": ...}, {"message": ...} and {"error": ..., "details": [...]}.
package response

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
)

var exposeInternalErrors atomic.Bool

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error   *string  `json:"error,omitempty"`
	Details []string `json:"details,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// ExposeInternalErrors controls whether 500 responses carry the underlying
// error text. Only development turns it on.
func ExposeInternalErrors(expose bool) {
	exposeInternalErrors.Store(expose)
}

func WithMessage(w http.ResponseWriter, code int, message string) {
	write(w, code, Message{Message: &message})
}

func WithJSON(w http.ResponseWriter, code int, payload any) {
	write(w, code, Data[any]{Data: &payload})
}

// WithError maps err to its status code. Server-side failures are logged
// here so handlers need not repeat it.
func WithError(w http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	message := publicMessage(err, code)

	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Int("code", code).Msg("Request failed")
	}

	write(w, code, Error{Error: &message, Details: failure.GetDetails(err)})
}

func WithRequestLimitExceeded(w http.ResponseWriter) {
	WithMessage(w, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(w http.ResponseWriter) {
	WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(w http.ResponseWriter) {
	WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func publicMessage(err error, code int) string {
	if code == http.StatusInternalServerError && !exposeInternalErrors.Load() {
		return constant.ResponseErrorInternal
	}

	return err.Error()
}

func write(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(w, constant.ResponseErrorInternal, http.StatusInternalServerError)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(code)

	if _, err = w.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
