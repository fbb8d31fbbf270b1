package model

import (
	"time"

	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldUserID         = "user_id"
	FieldRoomType       = "room_type"
	FieldCheckInDate    = "check_in_date"
	FieldCheckOutDate   = "check_out_date"
	FieldNumberOfRooms  = "number_of_rooms"
	FieldNumberOfGuests = "number_of_guests"
	FieldTotalPrice     = "total_price"
	FieldStatus         = "status"
	FieldReceiptURL     = "receipt_url"
	FieldCreatedAt      = "created_at"
)

// SortableFields are the columns list queries may order by.
var SortableFields = []string{
	FieldCreatedAt,
	FieldCheckInDate,
	FieldCheckOutDate,
	FieldTotalPrice,
	FieldStatus,
}

type Booking struct {
	ID              string         `db:"id"`
	UserID          string         `db:"user_id"`
	UserName        string         `db:"user_name"`
	UserEmail       string         `db:"user_email"`
	UserPhone       string         `db:"user_phone"`
	RoomType        roomModel.Type `db:"room_type"`
	CheckInDate     time.Time      `db:"check_in_date"`
	CheckOutDate    time.Time      `db:"check_out_date"`
	NumberOfGuests  int            `db:"number_of_guests"`
	NumberOfRooms   int            `db:"number_of_rooms"`
	PricePerNight   float64        `db:"price_per_night"`
	TotalNights     int            `db:"total_nights"`
	TotalPrice      float64        `db:"total_price"`
	Status          Status         `db:"status"`
	SpecialRequests string         `db:"special_requests"`
	ReceiptURL      string         `db:"receipt_url"`
	model.Metadata
}
