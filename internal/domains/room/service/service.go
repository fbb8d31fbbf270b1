package service

import (
	"context"
	"maps"

	"github.com/rs/zerolog/log"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/shared/constant"
)

// Room is the server-authoritative room catalog.
type Room interface {
	GetAll(ctx context.Context) dto.GetRoomsResponse
	Rate(roomType model.Type) (float64, bool)
}

type serviceImpl struct {
	rates      map[model.Type]float64
	totalRooms int
	otel       otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Room {
	rates := maps.Clone(model.DefaultRates)

	for name, rate := range cfg.App.Booking.Rates {
		roomType := model.Type(name)
		if !roomType.IsValid() || rate <= 0 {
			log.Warn().Str("roomType", name).Float64("rate", rate).Msg("ignoring configured rate for unknown room type")

			continue
		}

		rates[roomType] = rate
	}

	return &serviceImpl{
		rates:      rates,
		totalRooms: cfg.App.Booking.TotalRooms,
		otel:       otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()

	res.FromCatalog(s.rates, s.totalRooms)

	return res
}

func (s *serviceImpl) Rate(roomType model.Type) (float64, bool) {
	rate, ok := s.rates[roomType]

	return rate, ok
}
