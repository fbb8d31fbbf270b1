package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service/mocks"
	"hotel/internal/handlers/booking"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

const validBody = `{
	"userId": "0b8f7a61-2d9c-4f3e-8c5a-3e1f9d7b6a20",
	"userName": "Juan Dela Cruz",
	"userEmail": "juan@example.com",
	"userPhone": "09170000000",
	"roomType": "Deluxe Room",
	"checkInDate": "2026-12-20",
	"checkOutDate": "2026-12-23",
	"numberOfGuests": 2
}`

type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

func setup(t *testing.T) (*mocks.MockBooking, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBooking(ctrl)

	handler := booking.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
				assert.Equal(t, 1, req.Rooms())
				return dto.BookingResponse{ID: "b-1", Status: "Pending"}, nil
			})

		rec := serve(router, http.MethodPost, "/bookings/create", validBody)
		require.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Data dto.BookingResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "b-1", body.Data.ID)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, router := setup(t)

		body := strings.Replace(validBody, `"numberOfGuests": 2`, `"numberOfGuests": 2, "discount": 50`, 1)
		rec := serve(router, http.MethodPost, "/bookings/create", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("every failing field reported", func(t *testing.T) {
		_, router := setup(t)

		rec := serve(router, http.MethodPost, "/bookings/create", `{"roomType":"Penthouse","checkInDate":"2026-12-20","checkOutDate":"2026-12-19"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.GreaterOrEqual(t, len(body.Details), 6)
	})

	t.Run("inventory exhausted", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, failure.Conflict("no rooms left"))

		rec := serve(router, http.MethodPost, "/bookings/create", validBody)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandler_UpdateBookingStatus(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().SetStatus(gomock.Any(), "b-1", "Confirmed").Return(dto.BookingResponse{ID: "b-1", Status: "Confirmed"}, nil)

	rec := serve(router, http.MethodPut, "/bookings/b-1/status", `{"status":"Confirmed"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodPut, "/bookings/b-1/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetUserBookings(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		GetByUser(gomock.Any(), "u-1", gomock.Any()).
		DoAndReturn(func(_ any, _ string, params gDto.QueryParams) (dto.GetBookingsResponse, error) {
			assert.Equal(t, 2, params.Page)
			return dto.GetBookingsResponse{}, nil
		})

	rec := serve(router, http.MethodGet, "/bookings/user/u-1?page=2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_StaticRoutesWinOverID(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Stats(gomock.Any()).Return(dto.StatsResponse{TotalRooms: 50}, nil)
	svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(dto.GetBookingsResponse{}, nil)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/bookings/stats", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/bookings/all", "").Code)
}

func TestHandler_EnsureReceipt(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().EnsureReceipt(gomock.Any(), "b-1").Return(dto.BookingResponse{}, failure.Unavailable("try again"))

	rec := serve(router, http.MethodPost, "/bookings/b-1/receipt", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_DeleteBooking(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)
	svc.EXPECT().Delete(gomock.Any(), "missing").Return(failure.NotFound("booking not found"))

	assert.Equal(t, http.StatusOK, serve(router, http.MethodDelete, "/bookings/b-1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodDelete, "/bookings/missing", "").Code)
}
