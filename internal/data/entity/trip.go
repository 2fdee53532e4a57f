package entity

import (
	"time"

	"github.com/google/uuid"
)

type Trip struct {
	Base
	BusID         uuid.UUID `db:"bus_id"`
	RouteID       uuid.UUID `db:"route_id"`
	DepartureTime time.Time `db:"departure_time"`
	ArrivalTime   time.Time `db:"arrival_time"`
}

// TripDetail is a trip row with its bus and route joined. Either side may be
// nil when the referenced record has been deleted (orphaned foreign key).
type TripDetail struct {
	Trip
	Bus   *Bus
	Route *Route
}

// RouteLabel falls back to a sentinel when the route record is gone.
func (t *TripDetail) RouteLabel() string {
	if t.Route != nil {
		return t.Route.Label()
	}
	return "Unknown route"
}

// BusLabel falls back to a sentinel when the bus record is gone.
func (t *TripDetail) BusLabel() string {
	if t.Bus != nil {
		return t.Bus.RegistrationNumber
	}
	return "Bus"
}

func (t *TripDetail) Capacity() int {
	if t.Bus != nil {
		return t.Bus.Capacity
	}
	return 0
}
