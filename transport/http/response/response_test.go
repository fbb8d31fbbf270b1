package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel/shared/failure"
	"hotel/transport/http/response"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "b-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":"b-1"}}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expose   bool
		wantCode int
		wantBody string
	}{
		{
			name:     "validation details",
			err:      failure.Validation([]string{"roomType is required", "numberOfGuests is required"}),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"roomType is required; numberOfGuests is required","details":["roomType is required","numberOfGuests is required"]}`,
		},
		{
			name:     "not found",
			err:      failure.NotFound("booking not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"booking not found"}`,
		},
		{
			name:     "internal error sanitized",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
		{
			name:     "internal error exposed in development",
			err:      errors.New("pq: connection refused"),
			expose:   true,
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"pq: connection refused"}`,
		},
		{
			name:     "unavailable keeps its message",
			err:      failure.Unavailable("receipt could not be generated"),
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"error":"receipt could not be generated"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response.ExposeInternalErrors(tt.expose)
			defer response.ExposeInternalErrors(false)

			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}

func TestServiceUnavailableMessages(t *testing.T) {
	tests := []struct {
		name  string
		write func(http.ResponseWriter)
		want  string
	}{
		{name: "shutting down", write: response.WithPreparingShutdown, want: `{"message":"SERVER PREPARING TO SHUT DOWN"}`},
		{name: "unhealthy", write: response.WithUnhealthy, want: `{"message":"SERVER UNHEALTHY"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			tt.write(rec)

			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestWithJSON_Unencodable(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, make(chan int))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
