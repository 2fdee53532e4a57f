package repository

import (
	"bus-fleet/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Session   SessionRepository
	Bus       BusRepository
	Route     RouteRepository
	Trip      TripRepository
	Passenger PassengerRepository
	Booking   BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Session:   NewSessionRepository(db, log),
		Bus:       NewBusRepository(db, log),
		Route:     NewRouteRepository(db, log),
		Trip:      NewTripRepository(db, log),
		Passenger: NewPassengerRepository(db, log),
		Booking:   NewBookingRepository(db, log),
	}
}
