package usecase

import (
	"context"
	"fmt"
	"time"

	"bus-fleet/internal/data/entity"
	"bus-fleet/internal/data/repository"
	"bus-fleet/internal/dto/request"
	"bus-fleet/internal/dto/response"
	"bus-fleet/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TripService interface {
	GetTrips(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TripResponse], error)
	GetTripByID(ctx context.Context, tripID string) (*response.TripResponse, error)
	GetTripRefs(ctx context.Context) (*response.TripRefsResponse, error)
	CreateTrip(ctx context.Context, req *request.TripRequest) (*response.TripResponse, error)
	UpdateTrip(ctx context.Context, tripID string, req *request.TripUpdateRequest) (*response.TripResponse, error)
	DeleteTrip(ctx context.Context, tripID string) error
}

type tripService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTripService(repo *repository.Repository, log *zap.Logger) TripService {
	return &tripService{
		repo: repo,
		log:  log.With(zap.String("service", "trip")),
	}
}

func (s *tripService) GetTrips(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TripResponse], error) {
	trips, err := s.repo.Trip.FindPageDetailed(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get trips", zap.Error(err))
		return nil, fmt.Errorf("get trips: %w", err)
	}

	total, err := s.repo.Trip.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count trips", zap.Error(err))
		return nil, fmt.Errorf("count trips: %w", err)
	}

	tripResponses := make([]response.TripResponse, len(trips))
	for i, trip := range trips {
		tripResponses[i] = response.TripToResponse(trip)
	}

	return response.NewPaginatedResponse(tripResponses, req.Page, req.PerPage, total), nil
}

func (s *tripService) GetTripByID(ctx context.Context, tripID string) (*response.TripResponse, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, fmt.Errorf("invalid trip ID format %s: %w", tripID, err)
	}

	trip, err := s.repo.Trip.FindDetailByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get trip by ID", zap.Error(err), zap.String("trip_id", tripID))
		return nil, fmt.Errorf("get trip %s: %w", tripID, err)
	}
	if trip == nil {
		return nil, fmt.Errorf("trip %s not found", tripID)
	}

	resp := response.TripToResponse(trip)
	return &resp, nil
}

// GetTripRefs returns the dropdown datasets the trip create/edit form needs to
// pick valid foreign keys.
func (s *tripService) GetTripRefs(ctx context.Context) (*response.TripRefsResponse, error) {
	buses, err := s.repo.Bus.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get buses for trip refs", zap.Error(err))
		return nil, fmt.Errorf("get buses for trip refs: %w", err)
	}

	routes, err := s.repo.Route.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get routes for trip refs", zap.Error(err))
		return nil, fmt.Errorf("get routes for trip refs: %w", err)
	}

	refs := &response.TripRefsResponse{
		Buses:  make([]response.BusResponse, len(buses)),
		Routes: make([]response.RouteResponse, len(routes)),
	}
	for i, bus := range buses {
		refs.Buses[i] = response.BusToResponse(bus)
	}
	for i, route := range routes {
		refs.Routes[i] = response.RouteToResponse(route)
	}

	return refs, nil
}

func (s *tripService) CreateTrip(ctx context.Context, req *request.TripRequest) (*response.TripResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create trip validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	busID, routeID, err := s.resolveRefs(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trip := &entity.Trip{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BusID:         busID,
		RouteID:       routeID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}

	if err := s.repo.Trip.Create(ctx, trip); err != nil {
		s.log.Error("Failed to create trip", zap.Error(err))
		return nil, fmt.Errorf("create trip: %w", err)
	}

	s.log.Info("Trip created",
		zap.String("trip_id", trip.ID.String()),
		zap.Time("departure_time", trip.DepartureTime),
	)

	return s.GetTripByID(ctx, trip.ID.String())
}

func (s *tripService) UpdateTrip(ctx context.Context, tripID string, req *request.TripUpdateRequest) (*response.TripResponse, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, fmt.Errorf("invalid trip ID format %s: %w", tripID, err)
	}

	if req.ID != nil && *req.ID != tripID {
		return nil, fmt.Errorf("id mismatch: path %s payload %s", tripID, *req.ID)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update trip validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	busID, routeID, err := s.resolveRefs(ctx, &req.TripRequest)
	if err != nil {
		return nil, err
	}

	trip, err := s.repo.Trip.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get trip %s: %w", tripID, err)
	}
	if trip == nil {
		return nil, fmt.Errorf("trip %s not found", tripID)
	}

	trip.BusID = busID
	trip.RouteID = routeID
	trip.DepartureTime = req.DepartureTime
	trip.ArrivalTime = req.ArrivalTime
	trip.UpdatedAt = time.Now()

	if err := s.repo.Trip.Update(ctx, trip); err != nil {
		s.log.Error("Failed to update trip", zap.Error(err), zap.String("trip_id", tripID))
		return nil, fmt.Errorf("update trip %s: %w", tripID, err)
	}

	s.log.Info("Trip updated", zap.String("trip_id", tripID))

	return s.GetTripByID(ctx, tripID)
}

func (s *tripService) DeleteTrip(ctx context.Context, tripID string) error {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return fmt.Errorf("invalid trip ID format %s: %w", tripID, err)
	}

	bookingCount, err := s.repo.Booking.CountByTripID(ctx, id)
	if err != nil {
		return fmt.Errorf("count bookings for trip %s: %w", tripID, err)
	}
	if bookingCount > 0 {
		return fmt.Errorf("trip %s is in use by %d booking(s)", tripID, bookingCount)
	}

	deleted, err := s.repo.Trip.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete trip", zap.Error(err), zap.String("trip_id", tripID))
		return fmt.Errorf("delete trip %s: %w", tripID, err)
	}
	if !deleted {
		return fmt.Errorf("trip %s not found", tripID)
	}

	return nil
}

// resolveRefs checks that the referenced bus and route exist before a trip is
// written, since the store itself does not enforce the foreign keys.
func (s *tripService) resolveRefs(ctx context.Context, req *request.TripRequest) (uuid.UUID, uuid.UUID, error) {
	busID, err := uuid.Parse(req.BusID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid bus ID format %s: %w", req.BusID, err)
	}
	routeID, err := uuid.Parse(req.RouteID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid route ID format %s: %w", req.RouteID, err)
	}

	bus, err := s.repo.Bus.FindByID(ctx, busID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("get bus %s: %w", req.BusID, err)
	}
	if bus == nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("validation failed: bus %s does not exist", req.BusID)
	}

	route, err := s.repo.Route.FindByID(ctx, routeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("get route %s: %w", req.RouteID, err)
	}
	if route == nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("validation failed: route %s does not exist", req.RouteID)
	}

	return busID, routeID, nil
}
