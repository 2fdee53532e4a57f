package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"bus-fleet/internal/data/entity"
	"bus-fleet/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func seedBus(store *memStore, reg string, capacity int) *entity.Bus {
	bus := &entity.Bus{
		Base:               entity.Base{ID: uuid.New()},
		RegistrationNumber: reg,
		Capacity:           capacity,
	}
	store.buses = append(store.buses, bus)
	return bus
}

func seedRoute(store *memStore, from, to string) *entity.Route {
	route := &entity.Route{
		Base:     entity.Base{ID: uuid.New()},
		FromCity: from,
		ToCity:   to,
	}
	store.routes = append(store.routes, route)
	return route
}

func TestCreateTrip_RejectsArrivalBeforeDeparture(t *testing.T) {
	repo, store := newMemRepository()
	svc := NewTripService(repo, zap.NewNop())

	bus := seedBus(store, "B 1 AA", 40)
	route := seedRoute(store, "Jakarta", "Bandung")

	departure := time.Now().Add(24 * time.Hour)
	_, err := svc.CreateTrip(context.Background(), &request.TripRequest{
		BusID:         bus.ID.String(),
		RouteID:       route.ID.String(),
		DepartureTime: departure,
		ArrivalTime:   departure.Add(-time.Hour),
	})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateTrip_RejectsUnknownBus(t *testing.T) {
	repo, store := newMemRepository()
	svc := NewTripService(repo, zap.NewNop())

	route := seedRoute(store, "Jakarta", "Bandung")

	departure := time.Now().Add(24 * time.Hour)
	_, err := svc.CreateTrip(context.Background(), &request.TripRequest{
		BusID:         uuid.NewString(),
		RouteID:       route.ID.String(),
		DepartureTime: departure,
		ArrivalTime:   departure.Add(2 * time.Hour),
	})
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("expected missing bus error, got %v", err)
	}
	if len(store.trips) != 0 {
		t.Fatalf("trip must not be stored on failed ref check")
	}
}

func TestCreateTrip_ResolvesLabelsFromRefs(t *testing.T) {
	repo, store := newMemRepository()
	svc := NewTripService(repo, zap.NewNop())

	bus := seedBus(store, "B 1 AA", 40)
	route := seedRoute(store, "Jakarta", "Bandung")

	departure := time.Now().Add(24 * time.Hour)
	trip, err := svc.CreateTrip(context.Background(), &request.TripRequest{
		BusID:         bus.ID.String(),
		RouteID:       route.ID.String(),
		DepartureTime: departure,
		ArrivalTime:   departure.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}
	if trip.BusLabel != "B 1 AA" {
		t.Fatalf("bus label wrong: %q", trip.BusLabel)
	}
	if trip.RouteLabel != "Jakarta → Bandung" {
		t.Fatalf("route label wrong: %q", trip.RouteLabel)
	}
	if trip.Capacity != 40 {
		t.Fatalf("capacity wrong: %d", trip.Capacity)
	}
}

func TestGetTripByID_OrphanedBusFallsBackToSentinel(t *testing.T) {
	repo, store := newMemRepository()
	svc := NewTripService(repo, zap.NewNop())

	route := seedRoute(store, "Jakarta", "Bandung")
	store.trips = append(store.trips, &entity.Trip{
		Base:          entity.Base{ID: uuid.New()},
		BusID:         uuid.New(), // no such bus anymore
		RouteID:       route.ID,
		DepartureTime: time.Now().Add(time.Hour),
	})

	trip, err := svc.GetTripByID(context.Background(), store.trips[0].ID.String())
	if err != nil {
		t.Fatalf("get trip: %v", err)
	}
	if trip.BusLabel != "Bus" {
		t.Fatalf("expected bus sentinel, got %q", trip.BusLabel)
	}
	if trip.Capacity != 0 {
		t.Fatalf("expected capacity 0, got %d", trip.Capacity)
	}
}

func TestGetTripRefs_ReturnsBusesAndRoutes(t *testing.T) {
	repo, store := newMemRepository()
	svc := NewTripService(repo, zap.NewNop())

	seedBus(store, "B 1 AA", 40)
	seedBus(store, "B 2 BB", 30)
	seedRoute(store, "Jakarta", "Bandung")

	refs, err := svc.GetTripRefs(context.Background())
	if err != nil {
		t.Fatalf("get trip refs: %v", err)
	}
	if len(refs.Buses) != 2 || len(refs.Routes) != 1 {
		t.Fatalf("refs wrong: %d buses, %d routes", len(refs.Buses), len(refs.Routes))
	}
}

func TestDeleteTrip_RefusedWhileBookingsReferenceIt(t *testing.T) {
	repo, store := newMemRepository()
	svc := NewTripService(repo, zap.NewNop())

	bus := seedBus(store, "B 1 AA", 40)
	route := seedRoute(store, "Jakarta", "Bandung")

	departure := time.Now().Add(24 * time.Hour)
	trip, err := svc.CreateTrip(context.Background(), &request.TripRequest{
		BusID:         bus.ID.String(),
		RouteID:       route.ID.String(),
		DepartureTime: departure,
		ArrivalTime:   departure.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}

	store.bookings = append(store.bookings, &entity.Booking{
		Base:        entity.Base{ID: uuid.New()},
		TripID:      uuid.MustParse(trip.ID),
		PassengerID: uuid.New(),
		SeatNumber:  1,
		BookingDate: time.Now(),
	})

	err = svc.DeleteTrip(context.Background(), trip.ID)
	if err == nil || !strings.Contains(err.Error(), "in use") {
		t.Fatalf("expected in use error, got %v", err)
	}
}
