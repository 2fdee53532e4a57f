package request

import "time"

type BookingRequest struct {
	TripID      string    `json:"trip_id" validate:"required,uuid"`
	PassengerID string    `json:"passenger_id" validate:"required,uuid"`
	SeatNumber  int       `json:"seat_number" validate:"required,gte=1"`
	BookingDate time.Time `json:"booking_date" validate:"required"`
}

type BookingUpdateRequest struct {
	ID *string `json:"id,omitempty" validate:"omitempty,uuid"`
	BookingRequest
}
