package response

import "time"

// DashboardResponse bundles the four home-page widget datasets. All four are
// computed from one snapshot read at request time; nothing is cached.
type DashboardResponse struct {
	UpcomingTrips       []UpcomingTripItem       `json:"upcoming_trips"`
	Routes              []RouteOverviewItem      `json:"routes"`
	BusSeats            []BusSeatsItem           `json:"bus_seats"`
	BusRouteAssignments []BusRouteAssignmentItem `json:"bus_route_assignments"`
}

type UpcomingTripItem struct {
	TripID        string    `json:"trip_id"`
	RouteName     string    `json:"route_name"`
	BusLabel      string    `json:"bus_label"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Capacity      int       `json:"capacity"`
	BookedSeats   int       `json:"booked_seats"`
}

type RouteOverviewItem struct {
	RouteID           string `json:"route_id"`
	RouteName         string `json:"route_name"`
	TripCountToday    int    `json:"trip_count_today"`
	TotalTrips        int    `json:"total_trips"`
	ApproxBookedSeats int    `json:"approx_booked_seats"`
}

type BusSeatsItem struct {
	BusID       string  `json:"bus_id"`
	BusLabel    string  `json:"bus_label"`
	RouteName   string  `json:"route_name"`
	Capacity    int     `json:"capacity"`
	BookedSeats int     `json:"booked_seats"`
	FreeSeats   int     `json:"free_seats"`
	Utilization float64 `json:"utilization"`
}

type BusRouteAssignmentItem struct {
	BusID         string    `json:"bus_id"`
	BusLabel      string    `json:"bus_label"`
	RouteName     string    `json:"route_name"`
	NextDeparture time.Time `json:"next_departure"`
	FreeSeats     int       `json:"free_seats"`
}
