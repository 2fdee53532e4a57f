package response

import (
	"time"

	"bus-fleet/internal/data/entity"
)

type BookingResponse struct {
	ID             string     `json:"id"`
	TripID         string     `json:"trip_id"`
	PassengerID    string     `json:"passenger_id"`
	SeatNumber     int        `json:"seat_number"`
	BookingDate    time.Time  `json:"booking_date"`
	PassengerName  string     `json:"passenger_name,omitempty"`
	TripDeparture  *time.Time `json:"trip_departure,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TripOption is a dropdown entry with a human-readable composite label.
type TripOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type PassengerOption struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// BookingRefsResponse carries the dropdown datasets for the booking create/edit form.
type BookingRefsResponse struct {
	Trips      []TripOption      `json:"trips"`
	Passengers []PassengerOption `json:"passengers"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID.String(),
		TripID:      booking.TripID.String(),
		PassengerID: booking.PassengerID.String(),
		SeatNumber:  booking.SeatNumber,
		BookingDate: booking.BookingDate,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}

func BookingDetailToResponse(detail *entity.BookingDetail) BookingResponse {
	resp := BookingToResponse(&detail.Booking)
	if detail.Passenger != nil {
		resp.PassengerName = detail.Passenger.FullName
	}
	if detail.Trip != nil {
		departure := detail.Trip.DepartureTime
		resp.TripDeparture = &departure
	}
	return resp
}
