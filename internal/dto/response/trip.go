package response

import (
	"time"

	"bus-fleet/internal/data/entity"
)

type TripResponse struct {
	ID            string    `json:"id"`
	BusID         string    `json:"bus_id"`
	RouteID       string    `json:"route_id"`
	BusLabel      string    `json:"bus_label"`
	RouteLabel    string    `json:"route_label"`
	Capacity      int       `json:"capacity"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TripRefsResponse carries the dropdown datasets for the trip create/edit form.
type TripRefsResponse struct {
	Buses  []BusResponse   `json:"buses"`
	Routes []RouteResponse `json:"routes"`
}

func TripToResponse(trip *entity.TripDetail) TripResponse {
	return TripResponse{
		ID:            trip.ID.String(),
		BusID:         trip.BusID.String(),
		RouteID:       trip.RouteID.String(),
		BusLabel:      trip.BusLabel(),
		RouteLabel:    trip.RouteLabel(),
		Capacity:      trip.Capacity(),
		DepartureTime: trip.DepartureTime,
		ArrivalTime:   trip.ArrivalTime,
		CreatedAt:     trip.CreatedAt,
		UpdatedAt:     trip.UpdatedAt,
	}
}
