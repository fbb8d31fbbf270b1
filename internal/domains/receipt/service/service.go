package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/receipt/document"
	"hotel/internal/domains/receipt/storage"
	"hotel/shared/constant"
)

// ErrGeneration wraps every failure to produce or store a receipt.
var ErrGeneration = errors.New("receipt generation failed")

type Receipt interface {
	Generate(ctx context.Context, booking model.Booking) (string, error)
	Discard(ctx context.Context, bookingID string) error
}

type serviceImpl struct {
	storage  storage.Storage
	property document.Property
	otel     otel.Otel
}

func New(cfg *config.Config, storage storage.Storage, otel otel.Otel) Receipt {
	return &serviceImpl{
		storage:  storage,
		property: document.PropertyFromConfig(cfg),
		otel:     otel,
	}
}

type result struct {
	ref string
	err error
}

// Generate renders the booking's confirmation and stores it, returning the
// reference to the stored file. It returns as soon as ctx is done even if
// rendering is still in progress. The booking is never modified.
func (s *serviceImpl) Generate(ctx context.Context, booking model.Booking) (ref string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".receipt.Generate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking_id", booking.ID)

	done := make(chan result, 1)

	go func() {
		content := document.NewContent(booking, s.property)

		data, err := document.Render(content)
		if err != nil {
			done <- result{err: err}
			return
		}

		ref, err := s.storage.Save(ctx, document.FileName(booking.ID), data)
		done <- result{ref: ref, err: err}
	}()

	select {
	case <-ctx.Done():
		log.Warn().Err(ctx.Err()).Str("booking_id", booking.ID).Msg("Receipt generation abandoned")

		return "", fmt.Errorf("%w: %w", ErrGeneration, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("%w: %w", ErrGeneration, res.err)
		}

		return res.ref, nil
	}
}

// Discard removes the stored receipt of a deleted booking.
func (s *serviceImpl) Discard(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".receipt.Discard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.storage.Delete(ctx, document.FileName(bookingID)); err != nil {
		return fmt.Errorf("failed to discard receipt: %w", err)
	}

	return nil
}
