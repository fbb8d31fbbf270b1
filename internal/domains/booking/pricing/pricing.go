// Package pricing derives the length and cost of a stay.
package pricing

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrInvalidRoomCount = errors.New("number of rooms must be at least 1")
	ErrInvalidRate      = errors.New("price per night must be greater than 0")
)

const day = 24 * time.Hour

type Stay struct {
	Nights int
	Total  float64
}

// Nights counts started 24-hour periods between check-in and check-out, so a
// stay of 1.2 days bills two nights.
func Nights(checkIn, checkOut time.Time) (int, error) {
	if !checkOut.After(checkIn) {
		return 0, ErrInvalidDateRange
	}

	return int(math.Ceil(float64(checkOut.Sub(checkIn)) / float64(day))), nil
}

// ComputeStay returns the nights and total price for rooms booked at
// pricePerNight.
func ComputeStay(checkIn, checkOut time.Time, pricePerNight float64, rooms int) (Stay, error) {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return Stay{}, err
	}

	if rooms < 1 {
		return Stay{}, ErrInvalidRoomCount
	}

	if pricePerNight <= 0 {
		return Stay{}, ErrInvalidRate
	}

	return Stay{
		Nights: nights,
		Total:  float64(nights) * pricePerNight * float64(rooms),
	}, nil
}
