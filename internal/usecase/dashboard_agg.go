package usecase

import (
	"sort"
	"time"

	"bus-fleet/internal/data/entity"
	"bus-fleet/internal/dto/response"

	"github.com/google/uuid"
)

// buildDashboard computes the four widget datasets from one snapshot. It is a
// pure function of (now, snap).
func buildDashboard(now time.Time, snap *dashboardSnapshot) *response.DashboardResponse {
	return &response.DashboardResponse{
		UpcomingTrips:       upcomingTripItems(snap),
		Routes:              routeOverviewItems(now, snap),
		BusSeats:            busSeatItems(snap),
		BusRouteAssignments: busAssignmentItems(snap),
	}
}

func upcomingTripItems(snap *dashboardSnapshot) []response.UpcomingTripItem {
	items := make([]response.UpcomingTripItem, len(snap.upcoming))
	for i, trip := range snap.upcoming {
		items[i] = response.UpcomingTripItem{
			TripID:        trip.ID.String(),
			RouteName:     trip.RouteLabel(),
			BusLabel:      trip.BusLabel(),
			DepartureTime: trip.DepartureTime,
			ArrivalTime:   trip.ArrivalTime,
			Capacity:      trip.Capacity(),
			BookedSeats:   snap.upcomingCounts[trip.ID],
		}
	}
	return items
}

func routeOverviewItems(now time.Time, snap *dashboardSnapshot) []response.RouteOverviewItem {
	// Index trips by route once instead of rescanning per route.
	tripsByRoute := make(map[uuid.UUID][]*entity.Trip, len(snap.routes))
	for _, trip := range snap.trips {
		tripsByRoute[trip.RouteID] = append(tripsByRoute[trip.RouteID], trip)
	}

	items := make([]response.RouteOverviewItem, 0, len(snap.routes))
	for _, route := range snap.routes {
		routeTrips := tripsByRoute[route.ID]

		today := 0
		booked := 0
		for _, trip := range routeTrips {
			if sameDay(trip.DepartureTime, now) {
				today++
			}
			booked += snap.allCounts[trip.ID]
		}

		items = append(items, response.RouteOverviewItem{
			RouteID:           route.ID.String(),
			RouteName:         route.Label(),
			TripCountToday:    today,
			TotalTrips:        len(routeTrips),
			ApproxBookedSeats: booked,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].TripCountToday != items[j].TripCountToday {
			return items[i].TripCountToday > items[j].TripCountToday
		}
		return items[i].TotalTrips > items[j].TotalTrips
	})

	return capWidget(items)
}

type busSeatKey struct {
	busID     uuid.UUID
	busLabel  string
	capacity  int
	routeName string
}

func busSeatItems(snap *dashboardSnapshot) []response.BusSeatsItem {
	booked := make(map[busSeatKey]int)
	order := make([]busSeatKey, 0)

	for _, trip := range snap.upcoming {
		if trip.Bus == nil || trip.Route == nil {
			continue
		}
		key := busSeatKey{
			busID:     trip.BusID,
			busLabel:  trip.Bus.RegistrationNumber,
			capacity:  trip.Bus.Capacity,
			routeName: trip.Route.Label(),
		}
		if _, seen := booked[key]; !seen {
			order = append(order, key)
		}
		booked[key] += snap.upcomingCounts[trip.ID]
	}

	items := make([]response.BusSeatsItem, 0, len(order))
	for _, key := range order {
		count := booked[key]
		free := 0
		if key.capacity > count {
			free = key.capacity - count
		}
		utilization := 0.0
		if key.capacity > 0 {
			utilization = float64(count) / float64(key.capacity)
		}

		items = append(items, response.BusSeatsItem{
			BusID:       key.busID.String(),
			BusLabel:    key.busLabel,
			RouteName:   key.routeName,
			Capacity:    key.capacity,
			BookedSeats: count,
			FreeSeats:   free,
			Utilization: utilization,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Utilization != items[j].Utilization {
			return items[i].Utilization > items[j].Utilization
		}
		return items[i].BusLabel < items[j].BusLabel
	})

	return capWidget(items)
}

type busAssignmentKey struct {
	busID     uuid.UUID
	busLabel  string
	routeName string
}

func busAssignmentItems(snap *dashboardSnapshot) []response.BusRouteAssignmentItem {
	// Earliest upcoming trip per (bus, route) pair is the next departure.
	next := make(map[busAssignmentKey]*entity.TripDetail)
	order := make([]busAssignmentKey, 0)

	for _, trip := range snap.upcoming {
		if trip.Bus == nil || trip.Route == nil {
			continue
		}
		key := busAssignmentKey{
			busID:     trip.BusID,
			busLabel:  trip.Bus.RegistrationNumber,
			routeName: trip.Route.Label(),
		}
		current, seen := next[key]
		if !seen {
			order = append(order, key)
		}
		if !seen || trip.DepartureTime.Before(current.DepartureTime) {
			next[key] = trip
		}
	}

	items := make([]response.BusRouteAssignmentItem, 0, len(order))
	for _, key := range order {
		trip := next[key]
		capacity := trip.Capacity()
		count := snap.upcomingCounts[trip.ID]
		free := 0
		if capacity > count {
			free = capacity - count
		}

		items = append(items, response.BusRouteAssignmentItem{
			BusID:         key.busID.String(),
			BusLabel:      key.busLabel,
			RouteName:     key.routeName,
			NextDeparture: trip.DepartureTime,
			FreeSeats:     free,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].NextDeparture.Before(items[j].NextDeparture)
	})

	return capWidget(items)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func capWidget[T any](items []T) []T {
	if len(items) > widgetLimit {
		return items[:widgetLimit]
	}
	return items
}
