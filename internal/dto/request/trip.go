package request

import "time"

type TripRequest struct {
	BusID         string    `json:"bus_id" validate:"required,uuid"`
	RouteID       string    `json:"route_id" validate:"required,uuid"`
	DepartureTime time.Time `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time `json:"arrival_time" validate:"required,gtefield=DepartureTime"`
}

type TripUpdateRequest struct {
	ID *string `json:"id,omitempty" validate:"omitempty,uuid"`
	TripRequest
}
