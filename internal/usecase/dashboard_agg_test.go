package usecase

import (
	"fmt"
	"testing"
	"time"

	"bus-fleet/internal/data/entity"

	"github.com/google/uuid"
)

func newBus(reg string, capacity int) *entity.Bus {
	return &entity.Bus{
		Base:               entity.Base{ID: uuid.New()},
		RegistrationNumber: reg,
		Capacity:           capacity,
	}
}

func newRoute(from, to string) *entity.Route {
	return &entity.Route{
		Base:     entity.Base{ID: uuid.New()},
		FromCity: from,
		ToCity:   to,
	}
}

func newTripDetail(bus *entity.Bus, route *entity.Route, departure time.Time) *entity.TripDetail {
	trip := &entity.TripDetail{
		Trip: entity.Trip{
			Base:          entity.Base{ID: uuid.New()},
			DepartureTime: departure,
			ArrivalTime:   departure.Add(2 * time.Hour),
		},
		Bus:   bus,
		Route: route,
	}
	if bus != nil {
		trip.BusID = bus.ID
	}
	if route != nil {
		trip.RouteID = route.ID
	}
	return trip
}

func TestUpcomingTripItems_KeepsSnapshotOrderAndCounts(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	bus := newBus("B 7011 XA", 40)
	route := newRoute("Jakarta", "Bandung")

	first := newTripDetail(bus, route, now.Add(1*time.Hour))
	second := newTripDetail(bus, route, now.Add(3*time.Hour))

	snap := &dashboardSnapshot{
		upcoming: []*entity.TripDetail{first, second},
		upcomingCounts: map[uuid.UUID]int{
			first.ID:  12,
			second.ID: 3,
		},
	}

	items := upcomingTripItems(snap)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].TripID != first.ID.String() {
		t.Fatalf("order changed: got %s first", items[0].TripID)
	}
	if items[0].BookedSeats != 12 || items[1].BookedSeats != 3 {
		t.Fatalf("booked seats wrong: got %d and %d", items[0].BookedSeats, items[1].BookedSeats)
	}
	if items[0].RouteName != "Jakarta → Bandung" {
		t.Fatalf("route name wrong: %q", items[0].RouteName)
	}
	if items[0].Capacity != 40 {
		t.Fatalf("capacity wrong: %d", items[0].Capacity)
	}
}

func TestUpcomingTripItems_OrphanedReferencesUseSentinels(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	trip := newTripDetail(nil, nil, now.Add(time.Hour))

	snap := &dashboardSnapshot{upcoming: []*entity.TripDetail{trip}}

	items := upcomingTripItems(snap)
	if items[0].RouteName != "Unknown route" {
		t.Fatalf("expected route sentinel, got %q", items[0].RouteName)
	}
	if items[0].BusLabel != "Bus" {
		t.Fatalf("expected bus sentinel, got %q", items[0].BusLabel)
	}
	if items[0].Capacity != 0 {
		t.Fatalf("capacity should be 0 without a bus, got %d", items[0].Capacity)
	}
}

func TestRouteOverviewItems_SortsByTodayThenTotal(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	quiet := newRoute("Solo", "Semarang")
	busy := newRoute("Jakarta", "Surabaya")
	long := newRoute("Medan", "Padang")

	trips := []*entity.Trip{
		// busy: one trip today
		{Base: entity.Base{ID: uuid.New()}, RouteID: busy.ID, DepartureTime: now.Add(2 * time.Hour)},
		// long: no trips today but three total
		{Base: entity.Base{ID: uuid.New()}, RouteID: long.ID, DepartureTime: now.AddDate(0, 0, 1)},
		{Base: entity.Base{ID: uuid.New()}, RouteID: long.ID, DepartureTime: now.AddDate(0, 0, 2)},
		{Base: entity.Base{ID: uuid.New()}, RouteID: long.ID, DepartureTime: now.AddDate(0, 0, 3)},
		// quiet: one trip tomorrow
		{Base: entity.Base{ID: uuid.New()}, RouteID: quiet.ID, DepartureTime: now.AddDate(0, 0, 1)},
	}

	snap := &dashboardSnapshot{
		trips:  trips,
		routes: []*entity.Route{quiet, busy, long},
		allCounts: map[uuid.UUID]int{
			trips[0].ID: 7,
		},
	}

	items := routeOverviewItems(now, snap)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].RouteID != busy.ID.String() {
		t.Fatalf("route with a trip today should sort first, got %s", items[0].RouteName)
	}
	if items[1].RouteID != long.ID.String() {
		t.Fatalf("more total trips should break the tie, got %s", items[1].RouteName)
	}
	if items[0].ApproxBookedSeats != 7 {
		t.Fatalf("booked seats wrong: %d", items[0].ApproxBookedSeats)
	}
	if items[1].TripCountToday != 0 || items[1].TotalTrips != 3 {
		t.Fatalf("trip counts wrong: today=%d total=%d", items[1].TripCountToday, items[1].TotalTrips)
	}
}

func TestRouteOverviewItems_CapsAtFive(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	routes := make([]*entity.Route, 7)
	for i := range routes {
		routes[i] = newRoute(fmt.Sprintf("City%d", i), "Depok")
	}

	snap := &dashboardSnapshot{routes: routes}

	items := routeOverviewItems(now, snap)
	if len(items) != widgetLimit {
		t.Fatalf("expected %d items, got %d", widgetLimit, len(items))
	}
}

func TestBusSeatItems_UtilizationAndClamping(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	route := newRoute("Jakarta", "Bandung")

	half := newBus("HALF", 40)
	over := newBus("OVER", 10)
	zero := newBus("ZERO", 0)

	halfTrip := newTripDetail(half, route, now.Add(1*time.Hour))
	overTrip := newTripDetail(over, route, now.Add(2*time.Hour))
	zeroTrip := newTripDetail(zero, route, now.Add(3*time.Hour))

	snap := &dashboardSnapshot{
		upcoming: []*entity.TripDetail{halfTrip, overTrip, zeroTrip},
		upcomingCounts: map[uuid.UUID]int{
			halfTrip.ID: 20,
			overTrip.ID: 14,
			zeroTrip.ID: 1,
		},
	}

	items := busSeatItems(snap)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	// Overbooked bus (14/10 = 1.4) sorts above the half-full one.
	if items[0].BusLabel != "OVER" {
		t.Fatalf("expected OVER first, got %s", items[0].BusLabel)
	}
	if items[0].FreeSeats != 0 {
		t.Fatalf("free seats must clamp at 0, got %d", items[0].FreeSeats)
	}
	if items[1].BusLabel != "HALF" || items[1].Utilization != 0.5 {
		t.Fatalf("expected HALF at 0.5, got %s at %v", items[1].BusLabel, items[1].Utilization)
	}
	if items[1].FreeSeats != 20 {
		t.Fatalf("free seats wrong: %d", items[1].FreeSeats)
	}
	if items[2].BusLabel != "ZERO" || items[2].Utilization != 0 {
		t.Fatalf("zero-capacity bus must report utilization 0, got %s at %v", items[2].BusLabel, items[2].Utilization)
	}
}

func TestBusSeatItems_AggregatesTripsPerBusAndSkipsOrphans(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	route := newRoute("Jakarta", "Bandung")
	bus := newBus("AGG", 50)

	first := newTripDetail(bus, route, now.Add(1*time.Hour))
	second := newTripDetail(bus, route, now.Add(4*time.Hour))
	orphan := newTripDetail(nil, route, now.Add(2*time.Hour))

	snap := &dashboardSnapshot{
		upcoming: []*entity.TripDetail{first, second, orphan},
		upcomingCounts: map[uuid.UUID]int{
			first.ID:  10,
			second.ID: 5,
			orphan.ID: 99,
		},
	}

	items := busSeatItems(snap)
	if len(items) != 1 {
		t.Fatalf("expected 1 item (orphan skipped), got %d", len(items))
	}
	if items[0].BookedSeats != 15 {
		t.Fatalf("counts should sum across the bus's trips, got %d", items[0].BookedSeats)
	}
	if items[0].FreeSeats != 35 {
		t.Fatalf("free seats wrong: %d", items[0].FreeSeats)
	}
}

func TestBusAssignmentItems_EarliestDeparturePerPair(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	route := newRoute("Jakarta", "Bandung")
	other := newRoute("Jakarta", "Cirebon")
	bus := newBus("ASSIGN", 30)

	later := newTripDetail(bus, route, now.Add(6*time.Hour))
	sooner := newTripDetail(bus, route, now.Add(1*time.Hour))
	otherPair := newTripDetail(bus, other, now.Add(3*time.Hour))

	snap := &dashboardSnapshot{
		upcoming: []*entity.TripDetail{later, sooner, otherPair},
		upcomingCounts: map[uuid.UUID]int{
			sooner.ID: 25,
		},
	}

	items := busAssignmentItems(snap)
	if len(items) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(items))
	}
	// Sorted by next departure ascending.
	if !items[0].NextDeparture.Equal(sooner.DepartureTime) {
		t.Fatalf("expected the earliest departure first, got %v", items[0].NextDeparture)
	}
	if items[0].RouteName != "Jakarta → Bandung" {
		t.Fatalf("route name wrong: %q", items[0].RouteName)
	}
	// Free seats come from the next trip, not the later one.
	if items[0].FreeSeats != 5 {
		t.Fatalf("free seats wrong: %d", items[0].FreeSeats)
	}
	if items[1].RouteName != "Jakarta → Cirebon" {
		t.Fatalf("second pair wrong: %q", items[1].RouteName)
	}
}

func TestSameDay_ComparesInReferenceLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)

	// 23:30 UTC on March 10 is already March 11 in WIB.
	departure := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	now := time.Date(2026, 3, 11, 8, 0, 0, 0, jakarta)

	if !sameDay(departure, now) {
		t.Fatalf("expected %v and %v to share a day in %v", departure, now, now.Location())
	}
	if sameDay(departure, now.AddDate(0, 0, 1)) {
		t.Fatalf("next day should not match")
	}
}
