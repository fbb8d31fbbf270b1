package dto

import (
	"time"

	"hotel/internal/domains/booking/model"
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventBookingDeleted       = "booking.deleted"
)

// Event is published to the booking topic, keyed by booking id.
type Event struct {
	Type           string           `json:"type"`
	BookingID      string           `json:"bookingId"`
	Status         string           `json:"status,omitempty"`
	PreviousStatus string           `json:"previousStatus,omitempty"`
	OccurredAt     time.Time        `json:"occurredAt"`
	Booking        *BookingResponse `json:"booking,omitempty"`
}

func NewEvent(eventType string, booking model.Booking, previous model.Status, at time.Time) Event {
	event := Event{
		Type:       eventType,
		BookingID:  booking.ID,
		Status:     string(booking.Status),
		OccurredAt: at,
	}

	if previous != booking.Status {
		event.PreviousStatus = string(previous)
	}

	if eventType != EventBookingDeleted {
		event.Booking = &BookingResponse{}
		event.Booking.FromModel(booking)
	}

	return event
}
