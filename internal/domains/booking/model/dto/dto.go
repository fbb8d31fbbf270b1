package dto

import (
	"time"

	"github.com/google/uuid"

	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
)

const defaultNumberOfRooms = 1

type CreateBookingRequest struct {
	UserID          string   `json:"userId"                  validate:"required,uuid"`
	UserName        string   `json:"userName"                validate:"required,max=100"`
	UserEmail       string   `json:"userEmail"               validate:"required,email,max=100"`
	UserPhone       string   `json:"userPhone"               validate:"required,max=20"`
	RoomType        string   `json:"roomType"                validate:"required,roomtype"`
	CheckInDate     string   `json:"checkInDate"             validate:"required,isodate"`
	CheckOutDate    string   `json:"checkOutDate"            validate:"required,isodate,dateafter=checkInDate"`
	NumberOfGuests  int      `json:"numberOfGuests"          validate:"required,min=1"`
	NumberOfRooms   *int     `json:"numberOfRooms,omitempty" validate:"omitempty,min=1"`
	PricePerNight   *float64 `json:"pricePerNight,omitempty" validate:"omitempty,gt=0"`
	SpecialRequests string   `json:"specialRequests"         validate:"omitempty,max=1000"`
}

// Rooms returns the requested room count, defaulting to one.
func (c *CreateBookingRequest) Rooms() int {
	if c.NumberOfRooms == nil {
		return defaultNumberOfRooms
	}

	return *c.NumberOfRooms
}

// ToModel builds a Pending booking. Nights, totals and the nightly rate are
// filled in by the caller.
func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := timezone.ParseISO(c.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := timezone.ParseISO(c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	now := timezone.Now()

	return model.Booking{
		ID:              uuid.NewString(),
		UserID:          c.UserID,
		UserName:        c.UserName,
		UserEmail:       c.UserEmail,
		UserPhone:       c.UserPhone,
		RoomType:        roomModel.Type(c.RoomType),
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  c.NumberOfGuests,
		NumberOfRooms:   c.Rooms(),
		Status:          model.StatusPending,
		SpecialRequests: c.SpecialRequests,
		Metadata:        gModel.NewMetadata(user, now),
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"userId"`
	UserName        string  `json:"userName"`
	UserEmail       string  `json:"userEmail"`
	UserPhone       string  `json:"userPhone"`
	RoomType        string  `json:"roomType"`
	CheckInDate     string  `json:"checkInDate"`
	CheckOutDate    string  `json:"checkOutDate"`
	NumberOfGuests  int     `json:"numberOfGuests"`
	NumberOfRooms   int     `json:"numberOfRooms"`
	PricePerNight   float64 `json:"pricePerNight"`
	TotalNights     int     `json:"totalNights"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	SpecialRequests string  `json:"specialRequests"`
	ReceiptURL      string  `json:"receiptUrl"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.UserName = model.UserName
	r.UserEmail = model.UserEmail
	r.UserPhone = model.UserPhone
	r.RoomType = string(model.RoomType)
	r.CheckInDate = timezone.Format(model.CheckInDate, time.RFC3339)
	r.CheckOutDate = timezone.Format(model.CheckOutDate, time.RFC3339)
	r.NumberOfGuests = model.NumberOfGuests
	r.NumberOfRooms = model.NumberOfRooms
	r.PricePerNight = model.PricePerNight
	r.TotalNights = model.TotalNights
	r.TotalPrice = model.TotalPrice
	r.Status = string(model.Status)
	r.SpecialRequests = model.SpecialRequests
	r.ReceiptURL = model.ReceiptURL
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type StatsResponse struct {
	ConfirmedBookings int `json:"confirmedBookings"`
	BookedRooms       int `json:"bookedRooms"`
	AvailableRooms    int `json:"availableRooms"`
	PendingBookings   int `json:"pendingBookings"`
	TotalRooms        int `json:"totalRooms"`
}
