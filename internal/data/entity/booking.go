package entity

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	Base
	TripID      uuid.UUID `db:"trip_id"`
	PassengerID uuid.UUID `db:"passenger_id"`
	SeatNumber  int       `db:"seat_number"`
	BookingDate time.Time `db:"booking_date"`
}

// BookingDetail joins the booking with its trip and passenger for list views.
type BookingDetail struct {
	Booking
	Trip      *Trip
	Passenger *Passenger
}
