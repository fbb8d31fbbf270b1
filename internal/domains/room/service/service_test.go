package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/service"
)

func TestRate(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Booking.Rates = map[string]float64{
		"Deluxe Room":  6000,
		"Luxury Yacht": 99999,
		"Junior Suite": -1,
	}

	svc := service.New(cfg, mocks.NewOtel())

	tests := []struct {
		name     string
		roomType model.Type
		want     float64
		wantOK   bool
	}{
		{name: "default standard", roomType: model.TypeStandard, want: 3500, wantOK: true},
		{name: "configured deluxe", roomType: model.TypeDeluxe, want: 6000, wantOK: true},
		{name: "invalid override ignored", roomType: model.TypeJunior, want: 8000, wantOK: true},
		{name: "default executive", roomType: model.TypeExecutive, want: 12000, wantOK: true},
		{name: "unknown type", roomType: "Luxury Yacht", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := svc.Rate(tt.roomType)

			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}

	assert.InDelta(t, 5500, model.DefaultRates[model.TypeDeluxe], 0.001)
}

func TestGetAll(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Booking.TotalRooms = 50

	res := service.New(cfg, mocks.NewOtel()).GetAll(context.Background())

	assert.Equal(t, 50, res.TotalRooms)
	assert.Len(t, res.Rooms, 4)
	assert.Equal(t, "Standard Room", res.Rooms[0].Type)
	assert.InDelta(t, 12000, res.Rooms[3].PricePerNight, 0.001)
}
