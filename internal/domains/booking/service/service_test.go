package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	mailMocks "hotel/infras/mail/mocks"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	"hotel/internal/domains/booking/service"
	receiptMocks "hotel/internal/domains/receipt/mocks"
	receiptService "hotel/internal/domains/receipt/service"
	roomService "hotel/internal/domains/room/service"
	userMocks "hotel/internal/domains/user/mocks"
	"hotel/shared/access"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

const (
	bookingID = "6f1c3c4e-8a53-4e0b-9a57-0d7a8f3b2c11"
	ownerID   = "0b8f7a61-2d9c-4f3e-8c5a-3e1f9d7b6a20"
	adminID   = "9d2e4b7a-5c1f-4a8e-b3d6-7f0a1c2e8b95"
)

type fixture struct {
	repo    *mocks.MockBooking
	users   *userMocks.MockUser
	receipt *receiptMocks.MockReceipt
	cache   *cacheMocks.MockRedisCache
	kafka   *kafkaMocks.MockClient
	mailer  *mailMocks.MockMailer
	cfg     *config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:    mocks.NewMockBooking(ctrl),
		users:   userMocks.NewMockUser(ctrl),
		receipt: receiptMocks.NewMockReceipt(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		kafka:   kafkaMocks.NewMockClient(ctrl),
		mailer:  mailMocks.NewMockMailer(ctrl),
		cfg:     &config.Config{},
	}

	f.cfg.App.Booking.TotalRooms = 50
	f.cfg.App.Booking.Currency = "₱"
	f.cfg.App.Booking.ReceiptTimeoutSeconds = 1

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func (f *fixture) service() service.Booking {
	ot := otelMocks.NewOtel()

	return service.New(
		f.repo,
		f.users,
		roomService.New(f.cfg, ot),
		f.receipt,
		f.cfg,
		f.cache,
		f.kafka,
		f.mailer,
		ot,
	)
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		UserID:         ownerID,
		UserName:       "Juan Dela Cruz",
		UserEmail:      "juan@example.com",
		UserPhone:      "09170000000",
		RoomType:       "Deluxe Room",
		CheckInDate:    "2026-12-20",
		CheckOutDate:   "2026-12-23",
		NumberOfGuests: 2,
		NumberOfRooms:  intPtr(2),
	}
}

func storedBooking(status model.Status, receiptURL string) model.Booking {
	return model.Booking{
		ID:            bookingID,
		UserID:        ownerID,
		UserName:      "Juan Dela Cruz",
		UserEmail:     "juan@example.com",
		RoomType:      "Deluxe Room",
		CheckInDate:   time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC),
		CheckOutDate:  time.Date(2026, 12, 23, 0, 0, 0, 0, time.UTC),
		NumberOfRooms: 2,
		PricePerNight: 5500,
		TotalNights:   3,
		TotalPrice:    33000,
		Status:        status,
		ReceiptURL:    receiptURL,
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(req *dto.CreateBookingRequest)
		setup    func(f *fixture)
		wantCode int
		check    func(t *testing.T, res dto.BookingResponse)
	}{
		{
			name: "priced from catalog and stored pending",
			setup: func(f *fixture) {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().
					InsertWithinCapacity(gomock.Any(), gomock.Any(), 50).
					DoAndReturn(func(_ context.Context, booking model.Booking, _ int) error {
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Equal(t, 3, booking.TotalNights)
						assert.InDelta(t, 5500, booking.PricePerNight, 0)
						assert.InDelta(t, 33000, booking.TotalPrice, 0)
						assert.Empty(t, booking.ReceiptURL)
						return nil
					})
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, string(model.StatusPending), res.Status)
				assert.InDelta(t, 33000, res.TotalPrice, 0)
			},
		},
		{
			name: "rooms default to one",
			mutate: func(req *dto.CreateBookingRequest) {
				req.NumberOfRooms = nil
				req.PricePerNight = floatPtr(5500)
			},
			setup: func(f *fixture) {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().
					InsertWithinCapacity(gomock.Any(), gomock.Any(), 50).
					DoAndReturn(func(_ context.Context, booking model.Booking, _ int) error {
						assert.Equal(t, 1, booking.NumberOfRooms)
						assert.InDelta(t, 16500, booking.TotalPrice, 0)
						return nil
					})
			},
		},
		{
			name: "no inventory configured inserts directly",
			setup: func(f *fixture) {
				f.cfg.App.Booking.TotalRooms = 0
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "unknown room type",
			mutate:   func(req *dto.CreateBookingRequest) { req.RoomType = "Presidential Suite" },
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "client price differs from catalog",
			mutate:   func(req *dto.CreateBookingRequest) { req.PricePerNight = floatPtr(100) },
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "check out not after check in",
			mutate:   func(req *dto.CreateBookingRequest) { req.CheckOutDate = req.CheckInDate },
			wantCode: http.StatusBadRequest,
		},
		{
			name: "referenced user missing",
			setup: func(f *fixture) {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "inventory exhausted",
			setup: func(f *fixture) {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().
					InsertWithinCapacity(gomock.Any(), gomock.Any(), 50).
					Return(repository.ErrCapacityExceeded)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "store error",
			setup: func(f *fixture) {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().
					InsertWithinCapacity(gomock.Any(), gomock.Any(), 50).
					Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			req := createRequest()
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			res, err := f.service().Create(context.Background(), req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestBookingService_Create_PublishesEvent(t *testing.T) {
	f := newFixture(t)
	f.cfg.Kafka.Enable = true

	sent := make(chan dto.Event, 1)

	f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().InsertWithinCapacity(gomock.Any(), gomock.Any(), 50).Return(nil)
	f.kafka.EXPECT().
		SendMessages(gomock.Any(), constant.Empty, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			sent <- messages[0].Value.(dto.Event)
			return nil
		})

	res, err := f.service().Create(context.Background(), createRequest())
	require.NoError(t, err)

	select {
	case event := <-sent:
		assert.Equal(t, dto.EventBookingCreated, event.Type)
		assert.Equal(t, res.ID, event.BookingID)
		require.NotNil(t, event.Booking)
	case <-time.After(time.Second):
		t.Fatal("booking.created was not published")
	}
}

func TestBookingService_SetStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		setup      func(f *fixture)
		wantCode   int
		wantStatus model.Status
		wantURL    string
	}{
		{
			name:     "unknown status",
			status:   "Archived",
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "booking missing",
			status: "Confirmed",
			setup: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "terminal booking",
			status: "Confirmed",
			setup: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusCancelled, ""), nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "pending back to pending is a no-op",
			status: "Pending",
			setup: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusPending, ""), nil)
			},
			wantStatus: model.StatusPending,
		},
		{
			name:   "confirm attaches receipt",
			status: "Confirmed",
			setup: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusPending, ""), nil)
				gomock.InOrder(
					f.repo.EXPECT().
						UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) (int64, error) {
							assert.Equal(t, model.StatusConfirmed, fields[model.FieldStatus])
							assert.Len(t, filter.Filters, 2)
							return 1, nil
						}),
					f.receipt.EXPECT().
						Generate(gomock.Any(), gomock.Any()).
						DoAndReturn(func(ctx context.Context, booking model.Booking) (string, error) {
							_, ok := ctx.Deadline()
							assert.True(t, ok)
							assert.Equal(t, model.StatusConfirmed, booking.Status)
							return "/pdfs/booking-" + bookingID + ".pdf", nil
						}),
					f.repo.EXPECT().
						UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
							assert.Equal(t, "/pdfs/booking-"+bookingID+".pdf", fields[model.FieldReceiptURL])
							return 1, nil
						}),
				)
			},
			wantStatus: model.StatusConfirmed,
			wantURL:    "/pdfs/booking-" + bookingID + ".pdf",
		},
		{
			name:   "receipt failure keeps confirmation",
			status: "Confirmed",
			setup: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusPending, ""), nil)
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				f.receipt.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return("", receiptService.ErrGeneration)
			},
			wantStatus: model.StatusConfirmed,
		},
		{
			name:   "reconfirm retries missing receipt",
			status: "Confirmed",
			setup: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed, ""), nil)
				f.receipt.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("/pdfs/r.pdf", nil)
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
			wantStatus: model.StatusConfirmed,
			wantURL:    "/pdfs/r.pdf",
		},
		{
			name:   "reconfirm with receipt does nothing",
			status: "Confirmed",
			setup: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed, "/pdfs/r.pdf"), nil)
			},
			wantStatus: model.StatusConfirmed,
			wantURL:    "/pdfs/r.pdf",
		},
		{
			name:   "cancel confirmed booking",
			status: "Cancelled",
			setup: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed, "/pdfs/r.pdf"), nil)
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
			wantStatus: model.StatusCancelled,
			wantURL:    "/pdfs/r.pdf",
		},
		{
			name:   "concurrent change",
			status: "Cancelled",
			setup: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusPending, ""), nil)
				f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			res, err := f.service().SetStatus(context.Background(), bookingID, tt.status)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, string(tt.wantStatus), res.Status)
			assert.Equal(t, tt.wantURL, res.ReceiptURL)
		})
	}
}

func TestBookingService_EnsureReceipt(t *testing.T) {
	t.Run("pending booking", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusPending, ""), nil)

		_, err := f.service().EnsureReceipt(context.Background(), bookingID)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("already attached", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed, "/pdfs/r.pdf"), nil)

		res, err := f.service().EnsureReceipt(context.Background(), bookingID)
		require.NoError(t, err)
		assert.Equal(t, "/pdfs/r.pdf", res.ReceiptURL)
	})

	t.Run("generation fails", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed, ""), nil)
		f.receipt.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", receiptService.ErrGeneration)

		_, err := f.service().EnsureReceipt(context.Background(), bookingID)
		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})

	t.Run("attached", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed, ""), nil)
		f.receipt.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("/pdfs/r.pdf", nil)
		f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

		res, err := f.service().EnsureReceipt(context.Background(), bookingID)
		require.NoError(t, err)
		assert.Equal(t, "/pdfs/r.pdf", res.ReceiptURL)
	})

	t.Run("recorded by a concurrent request", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed, ""), nil)
		f.receipt.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("/pdfs/mine.pdf", nil)
		f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed, "/pdfs/theirs.pdf"), nil)

		res, err := f.service().EnsureReceipt(context.Background(), bookingID)
		require.NoError(t, err)
		assert.Equal(t, "/pdfs/theirs.pdf", res.ReceiptURL)
	})
}

func TestBookingService_MalformedID(t *testing.T) {
	admin := access.WithActor(context.Background(), access.Actor{ID: adminID, Role: constant.RoleAdmin})

	for _, id := range []string{"not-a-uuid", "123", constant.Empty} {
		t.Run(id, func(t *testing.T) {
			// any repository call fails the test through the mock controller
			f := newFixture(t)
			svc := f.service()

			_, err := svc.Get(admin, id)
			assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

			_, err = svc.SetStatus(context.Background(), id, "Confirmed")
			assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

			_, err = svc.EnsureReceipt(context.Background(), id)
			assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

			err = svc.Delete(context.Background(), id)
			assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		stored   bool
		wantCode int
	}{
		{
			name:     "anonymous",
			ctx:      context.Background(),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "owner",
			ctx:    access.WithActor(context.Background(), access.Actor{ID: ownerID, Role: constant.RoleUser}),
			stored: true,
		},
		{
			name:   "admin",
			ctx:    access.WithActor(context.Background(), access.Actor{ID: adminID, Role: constant.RoleAdmin}),
			stored: true,
		},
		{
			name:     "another user",
			ctx:      access.WithActor(context.Background(), access.Actor{ID: adminID, Role: constant.RoleUser}),
			stored:   true,
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.stored {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusPending, ""), nil)
			}

			res, err := f.service().Get(tt.ctx, bookingID)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Empty(t, res.ID)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, bookingID, res.ID)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)
			assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)
			return []model.Booking{storedBooking(model.StatusPending, ""), storedBooking(model.StatusConfirmed, "")}, nil
		})

	res, err := f.service().GetAll(context.Background(), gDto.QueryParams{SortBy: "password", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestBookingService_GetByUser(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service().GetByUser(context.Background(), "not-a-uuid", gDto.QueryParams{})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("filters on owner", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				require.Len(t, filter.Filters, 1)
				condition := filter.Filters[0].(gDto.Filter)
				assert.Equal(t, model.FieldUserID, condition.Field)
				assert.Equal(t, ownerID, condition.Value)
				return nil, nil
			})

		res, err := f.service().GetByUser(context.Background(), ownerID, gDto.QueryParams{Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, res.Bookings)
	})
}

func TestBookingService_Stats(t *testing.T) {
	f := newFixture(t)
	f.cfg.App.Booking.TotalRooms = 10

	gomock.InOrder(
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(4, nil),
		f.repo.EXPECT().SumRooms(gomock.Any(), gomock.Any()).Return(12, nil),
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil),
	)

	res, err := f.service().Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, res.ConfirmedBookings)
	assert.Equal(t, 12, res.BookedRooms)
	assert.Equal(t, 3, res.PendingBookings)
	assert.Equal(t, 10, res.TotalRooms)
	assert.Zero(t, res.AvailableRooms)
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := f.service().Delete(context.Background(), bookingID)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("deleted without receipt", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusPending, ""), nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, f.service().Delete(context.Background(), bookingID))
	})

	t.Run("receipt discarded", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed, "/pdfs/booking-"+bookingID+".pdf"), nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.receipt.EXPECT().Discard(gomock.Any(), bookingID).Return(errors.New("disk gone"))

		require.NoError(t, f.service().Delete(context.Background(), bookingID))
	})
}
