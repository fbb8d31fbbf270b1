package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"
)

// ErrCapacityExceeded is returned when a booking would push overlapping
// active reservations past the property's room inventory.
var ErrCapacityExceeded = errors.New("not enough rooms available for the requested dates")

// inventoryLockKey serialises capacity checks across all writers.
const inventoryLockKey int64 = 0x626f6f6b696e67

const (
	queryInventoryLock = `SELECT pg_advisory_xact_lock($1)`
	queryOverlapRooms  = `SELECT COALESCE(SUM(number_of_rooms), 0) FROM bookings
		WHERE status = ANY($1) AND check_in_date < $2 AND check_out_date > $3`
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertWithinCapacity(ctx context.Context, booking model.Booking, capacity int) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	SumRooms(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateAffected(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// InsertWithinCapacity inserts booking only when the rooms held by
// overlapping Pending or Confirmed bookings plus the new request fit within
// capacity. The check and the insert share one transaction guarded by an
// advisory lock so concurrent creates cannot both take the last rooms.
func (r *repositoryImpl) InsertWithinCapacity(ctx context.Context, booking model.Booking, capacity int) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertWithinCapacity")
	defer scope.End()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, queryInventoryLock, inventoryLockKey); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return fmt.Errorf("failed to lock inventory: %w", err)
		}

		booked, err := overlappingRooms(ctx, tx, booking.CheckInDate, booking.CheckOutDate)
		if err != nil {
			scope.TraceError(err)

			return err
		}

		if booked+booking.NumberOfRooms > capacity {
			return fmt.Errorf("%w: %d of %d rooms already held", ErrCapacityExceeded, booked, capacity)
		}

		return r.InsertTx(ctx, tx, booking) //nolint:wrapcheck
	})
}

func overlappingRooms(ctx context.Context, tx *sqlx.Tx, checkIn, checkOut time.Time) (int, error) {
	statuses := make([]string, len(model.ActiveStatuses))
	for i, status := range model.ActiveStatuses {
		statuses[i] = string(status)
	}

	var booked int

	err := tx.GetContext(ctx, &booked, queryOverlapRooms, pq.Array(statuses), checkOut, checkIn)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to sum overlapping rooms: %w", err)
	}

	return booked, nil
}

func (r *repositoryImpl) SumRooms(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.SumRooms")
	defer scope.End()

	return r.Sum(ctx, model.FieldNumberOfRooms, filter) //nolint:wrapcheck
}
