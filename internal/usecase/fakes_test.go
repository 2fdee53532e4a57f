package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"bus-fleet/internal/data/entity"
	"bus-fleet/internal/data/repository"

	"github.com/google/uuid"
)

// memStore is a shared in-memory backing store for the fake repositories, so
// cross-entity reads (joins, reference counts) see each other's writes.
type memStore struct {
	buses      []*entity.Bus
	routes     []*entity.Route
	trips      []*entity.Trip
	passengers []*entity.Passenger
	bookings   []*entity.Booking
	sessions   []*entity.Session
}

func newMemRepository() (*repository.Repository, *memStore) {
	store := &memStore{}
	return &repository.Repository{
		Session:   &memSessionRepo{store},
		Bus:       &memBusRepo{store},
		Route:     &memRouteRepo{store},
		Trip:      &memTripRepo{store},
		Passenger: &memPassengerRepo{store},
		Booking:   &memBookingRepo{store},
	}, store
}

func (s *memStore) findBus(id uuid.UUID) *entity.Bus {
	for _, b := range s.buses {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (s *memStore) findRoute(id uuid.UUID) *entity.Route {
	for _, r := range s.routes {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (s *memStore) findPassenger(id uuid.UUID) *entity.Passenger {
	for _, p := range s.passengers {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *memStore) tripDetail(trip *entity.Trip) *entity.TripDetail {
	return &entity.TripDetail{
		Trip:  *trip,
		Bus:   s.findBus(trip.BusID),
		Route: s.findRoute(trip.RouteID),
	}
}

// ---------------- bus ----------------

type memBusRepo struct{ store *memStore }

func (r *memBusRepo) Create(ctx context.Context, bus *entity.Bus) error {
	r.store.buses = append(r.store.buses, bus)
	return nil
}

func (r *memBusRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bus, error) {
	return r.store.findBus(id), nil
}

func (r *memBusRepo) FindPage(ctx context.Context, limit, offset int) ([]*entity.Bus, error) {
	return pageOf(r.store.buses, limit, offset), nil
}

func (r *memBusRepo) FindAll(ctx context.Context) ([]*entity.Bus, error) {
	return r.store.buses, nil
}

func (r *memBusRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.store.buses)), nil
}

func (r *memBusRepo) Update(ctx context.Context, bus *entity.Bus) error {
	for i, b := range r.store.buses {
		if b.ID == bus.ID {
			r.store.buses[i] = bus
			return nil
		}
	}
	return fmt.Errorf("bus %s not found", bus.ID.String())
}

func (r *memBusRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	for i, b := range r.store.buses {
		if b.ID == id {
			r.store.buses = append(r.store.buses[:i], r.store.buses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ---------------- route ----------------

type memRouteRepo struct{ store *memStore }

func (r *memRouteRepo) Create(ctx context.Context, route *entity.Route) error {
	r.store.routes = append(r.store.routes, route)
	return nil
}

func (r *memRouteRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	return r.store.findRoute(id), nil
}

func (r *memRouteRepo) FindPage(ctx context.Context, limit, offset int) ([]*entity.Route, error) {
	return pageOf(r.store.routes, limit, offset), nil
}

func (r *memRouteRepo) FindAll(ctx context.Context) ([]*entity.Route, error) {
	return r.store.routes, nil
}

func (r *memRouteRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.store.routes)), nil
}

func (r *memRouteRepo) Update(ctx context.Context, route *entity.Route) error {
	for i, existing := range r.store.routes {
		if existing.ID == route.ID {
			r.store.routes[i] = route
			return nil
		}
	}
	return fmt.Errorf("route %s not found", route.ID.String())
}

func (r *memRouteRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	for i, existing := range r.store.routes {
		if existing.ID == id {
			r.store.routes = append(r.store.routes[:i], r.store.routes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ---------------- trip ----------------

type memTripRepo struct{ store *memStore }

func (r *memTripRepo) Create(ctx context.Context, trip *entity.Trip) error {
	r.store.trips = append(r.store.trips, trip)
	return nil
}

func (r *memTripRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	for _, t := range r.store.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *memTripRepo) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.TripDetail, error) {
	for _, t := range r.store.trips {
		if t.ID == id {
			return r.store.tripDetail(t), nil
		}
	}
	return nil, nil
}

func (r *memTripRepo) FindPageDetailed(ctx context.Context, limit, offset int) ([]*entity.TripDetail, error) {
	page := pageOf(r.store.trips, limit, offset)
	details := make([]*entity.TripDetail, len(page))
	for i, t := range page {
		details[i] = r.store.tripDetail(t)
	}
	return details, nil
}

func (r *memTripRepo) FindAllDetailed(ctx context.Context) ([]*entity.TripDetail, error) {
	details := make([]*entity.TripDetail, len(r.store.trips))
	for i, t := range r.store.trips {
		details[i] = r.store.tripDetail(t)
	}
	return details, nil
}

func (r *memTripRepo) FindAll(ctx context.Context) ([]*entity.Trip, error) {
	return r.store.trips, nil
}

func (r *memTripRepo) FindUpcoming(ctx context.Context, now time.Time, limit int) ([]*entity.TripDetail, error) {
	var upcoming []*entity.TripDetail
	for _, t := range r.store.trips {
		if !t.DepartureTime.Before(now) {
			upcoming = append(upcoming, r.store.tripDetail(t))
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DepartureTime.Before(upcoming[j].DepartureTime)
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming, nil
}

func (r *memTripRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.store.trips)), nil
}

func (r *memTripRepo) CountByBusID(ctx context.Context, busID uuid.UUID) (int64, error) {
	var n int64
	for _, t := range r.store.trips {
		if t.BusID == busID {
			n++
		}
	}
	return n, nil
}

func (r *memTripRepo) CountByRouteID(ctx context.Context, routeID uuid.UUID) (int64, error) {
	var n int64
	for _, t := range r.store.trips {
		if t.RouteID == routeID {
			n++
		}
	}
	return n, nil
}

func (r *memTripRepo) Update(ctx context.Context, trip *entity.Trip) error {
	for i, t := range r.store.trips {
		if t.ID == trip.ID {
			r.store.trips[i] = trip
			return nil
		}
	}
	return fmt.Errorf("trip %s not found", trip.ID.String())
}

func (r *memTripRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	for i, t := range r.store.trips {
		if t.ID == id {
			r.store.trips = append(r.store.trips[:i], r.store.trips[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ---------------- passenger ----------------

type memPassengerRepo struct{ store *memStore }

func (r *memPassengerRepo) Create(ctx context.Context, passenger *entity.Passenger) error {
	r.store.passengers = append(r.store.passengers, passenger)
	return nil
}

func (r *memPassengerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error) {
	return r.store.findPassenger(id), nil
}

func (r *memPassengerRepo) FindPage(ctx context.Context, limit, offset int) ([]*entity.Passenger, error) {
	return pageOf(r.store.passengers, limit, offset), nil
}

func (r *memPassengerRepo) FindAll(ctx context.Context) ([]*entity.Passenger, error) {
	return r.store.passengers, nil
}

func (r *memPassengerRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.store.passengers)), nil
}

func (r *memPassengerRepo) Update(ctx context.Context, passenger *entity.Passenger) error {
	for i, p := range r.store.passengers {
		if p.ID == passenger.ID {
			r.store.passengers[i] = passenger
			return nil
		}
	}
	return fmt.Errorf("passenger %s not found", passenger.ID.String())
}

func (r *memPassengerRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	for i, p := range r.store.passengers {
		if p.ID == id {
			r.store.passengers = append(r.store.passengers[:i], r.store.passengers[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ---------------- booking ----------------

type memBookingRepo struct{ store *memStore }

func (r *memBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	r.store.bookings = append(r.store.bookings, booking)
	return nil
}

func (r *memBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	for _, b := range r.store.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *memBookingRepo) FindPageDetailed(ctx context.Context, limit, offset int) ([]*entity.BookingDetail, error) {
	page := pageOf(r.store.bookings, limit, offset)
	details := make([]*entity.BookingDetail, len(page))
	for i, b := range page {
		detail := &entity.BookingDetail{
			Booking:   *b,
			Passenger: r.store.findPassenger(b.PassengerID),
		}
		for _, t := range r.store.trips {
			if t.ID == b.TripID {
				detail.Trip = t
				break
			}
		}
		details[i] = detail
	}
	return details, nil
}

func (r *memBookingRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.store.bookings)), nil
}

func (r *memBookingRepo) CountByTripIDs(ctx context.Context, tripIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	wanted := make(map[uuid.UUID]bool, len(tripIDs))
	for _, id := range tripIDs {
		wanted[id] = true
	}
	counts := make(map[uuid.UUID]int)
	for _, b := range r.store.bookings {
		if wanted[b.TripID] {
			counts[b.TripID]++
		}
	}
	return counts, nil
}

func (r *memBookingRepo) CountAllByTrip(ctx context.Context) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int)
	for _, b := range r.store.bookings {
		counts[b.TripID]++
	}
	return counts, nil
}

func (r *memBookingRepo) CountByTripID(ctx context.Context, tripID uuid.UUID) (int64, error) {
	var n int64
	for _, b := range r.store.bookings {
		if b.TripID == tripID {
			n++
		}
	}
	return n, nil
}

func (r *memBookingRepo) CountByPassengerID(ctx context.Context, passengerID uuid.UUID) (int64, error) {
	var n int64
	for _, b := range r.store.bookings {
		if b.PassengerID == passengerID {
			n++
		}
	}
	return n, nil
}

func (r *memBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	for i, b := range r.store.bookings {
		if b.ID == booking.ID {
			r.store.bookings[i] = booking
			return nil
		}
	}
	return fmt.Errorf("booking %s not found", booking.ID.String())
}

func (r *memBookingRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	for i, b := range r.store.bookings {
		if b.ID == id {
			r.store.bookings = append(r.store.bookings[:i], r.store.bookings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ---------------- session ----------------

type memSessionRepo struct{ store *memStore }

func (r *memSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	r.store.sessions = append(r.store.sessions, session)
	return nil
}

func (r *memSessionRepo) FindValid(ctx context.Context, token string) (*entity.Session, error) {
	for _, s := range r.store.sessions {
		if s.Token.String() == token && s.RevokedAt == nil && s.ExpiresAt.After(time.Now()) {
			return s, nil
		}
	}
	return nil, nil
}

func (r *memSessionRepo) Revoke(ctx context.Context, token string) error {
	for _, s := range r.store.sessions {
		if s.Token.String() == token && s.RevokedAt == nil {
			now := time.Now()
			s.RevokedAt = &now
			return nil
		}
	}
	return fmt.Errorf("session not found or already revoked")
}

func pageOf[T any](items []*T, limit, offset int) []*T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
