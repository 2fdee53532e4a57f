package usecase

import (
	"context"
	"fmt"
	"time"

	"bus-fleet/internal/data/entity"
	"bus-fleet/internal/data/repository"
	"bus-fleet/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	upcomingTripLimit = 20
	widgetLimit       = 5
)

type DashboardService interface {
	GetDashboard(ctx context.Context, now time.Time) (*response.DashboardResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

// dashboardSnapshot holds everything the widget computations need, read once
// per request. The aggregation over it is pure.
type dashboardSnapshot struct {
	// upcoming is at most upcomingTripLimit trips, sorted ascending by
	// departure, with bus and route joined.
	upcoming []*entity.TripDetail
	// upcomingCounts is booking-count-by-trip restricted to upcoming trips.
	upcomingCounts map[uuid.UUID]int
	// allCounts is booking-count-by-trip over every booking in the store.
	allCounts map[uuid.UUID]int
	trips     []*entity.Trip
	routes    []*entity.Route
}

func (s *dashboardService) GetDashboard(ctx context.Context, now time.Time) (*response.DashboardResponse, error) {
	upcoming, err := s.repo.Trip.FindUpcoming(ctx, now, upcomingTripLimit)
	if err != nil {
		s.log.Error("Failed to read upcoming trips", zap.Error(err))
		return nil, fmt.Errorf("dashboard upcoming trips: %w", err)
	}

	tripIDs := make([]uuid.UUID, len(upcoming))
	for i, trip := range upcoming {
		tripIDs[i] = trip.ID
	}

	upcomingCounts, err := s.repo.Booking.CountByTripIDs(ctx, tripIDs)
	if err != nil {
		s.log.Error("Failed to count bookings for upcoming trips", zap.Error(err))
		return nil, fmt.Errorf("dashboard upcoming booking counts: %w", err)
	}

	allCounts, err := s.repo.Booking.CountAllByTrip(ctx)
	if err != nil {
		s.log.Error("Failed to count all bookings by trip", zap.Error(err))
		return nil, fmt.Errorf("dashboard booking counts: %w", err)
	}

	trips, err := s.repo.Trip.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to read trips", zap.Error(err))
		return nil, fmt.Errorf("dashboard trips: %w", err)
	}

	routes, err := s.repo.Route.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to read routes", zap.Error(err))
		return nil, fmt.Errorf("dashboard routes: %w", err)
	}

	snap := &dashboardSnapshot{
		upcoming:       upcoming,
		upcomingCounts: upcomingCounts,
		allCounts:      allCounts,
		trips:          trips,
		routes:         routes,
	}

	s.log.Debug("Dashboard snapshot read",
		zap.Int("upcoming_trips", len(upcoming)),
		zap.Int("trips", len(trips)),
		zap.Int("routes", len(routes)),
	)

	return buildDashboard(now, snap), nil
}
