package adaptor

import (
	"bus-fleet/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Bus       *BusHandler
	Route     *RouteHandler
	Trip      *TripHandler
	Passenger *PassengerHandler
	Booking   *BookingHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Bus:       NewBusHandler(service.Bus, log),
		Route:     NewRouteHandler(service.Route, log),
		Trip:      NewTripHandler(service.Trip, log),
		Passenger: NewPassengerHandler(service.Passenger, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
	}
}
