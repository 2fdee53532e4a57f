package usecase

import (
	"bus-fleet/internal/data/repository"
	"bus-fleet/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Bus       BusService
	Route     RouteService
	Trip      TripService
	Passenger PassengerService
	Booking   BookingService
	Dashboard DashboardService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Bus:       NewBusService(repo, log),
		Route:     NewRouteService(repo, log),
		Trip:      NewTripService(repo, log),
		Passenger: NewPassengerService(repo, log),
		Booking:   NewBookingService(repo, log),
		Dashboard: NewDashboardService(repo, log),
	}
}
