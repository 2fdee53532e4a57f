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

type BusService interface {
	GetBuses(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BusResponse], error)
	GetBusByID(ctx context.Context, busID string) (*response.BusResponse, error)
	CreateBus(ctx context.Context, req *request.BusRequest) (*response.BusResponse, error)
	UpdateBus(ctx context.Context, busID string, req *request.BusUpdateRequest) (*response.BusResponse, error)
	DeleteBus(ctx context.Context, busID string) error
}

type busService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBusService(repo *repository.Repository, log *zap.Logger) BusService {
	return &busService{
		repo: repo,
		log:  log.With(zap.String("service", "bus")),
	}
}

func (s *busService) GetBuses(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BusResponse], error) {
	buses, err := s.repo.Bus.FindPage(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get buses", zap.Error(err))
		return nil, fmt.Errorf("get buses: %w", err)
	}

	total, err := s.repo.Bus.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count buses", zap.Error(err))
		return nil, fmt.Errorf("count buses: %w", err)
	}

	busResponses := make([]response.BusResponse, len(buses))
	for i, bus := range buses {
		busResponses[i] = response.BusToResponse(bus)
	}

	return response.NewPaginatedResponse(busResponses, req.Page, req.PerPage, total), nil
}

func (s *busService) GetBusByID(ctx context.Context, busID string) (*response.BusResponse, error) {
	id, err := uuid.Parse(busID)
	if err != nil {
		return nil, fmt.Errorf("invalid bus ID format %s: %w", busID, err)
	}

	bus, err := s.repo.Bus.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get bus by ID", zap.Error(err), zap.String("bus_id", busID))
		return nil, fmt.Errorf("get bus %s: %w", busID, err)
	}
	if bus == nil {
		return nil, fmt.Errorf("bus %s not found", busID)
	}

	resp := response.BusToResponse(bus)
	return &resp, nil
}

func (s *busService) CreateBus(ctx context.Context, req *request.BusRequest) (*response.BusResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create bus validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	bus := &entity.Bus{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RegistrationNumber: req.RegistrationNumber,
		Capacity:           req.Capacity,
		Description:        req.Description,
	}

	if err := s.repo.Bus.Create(ctx, bus); err != nil {
		s.log.Error("Failed to create bus",
			zap.Error(err),
			zap.String("registration_number", req.RegistrationNumber),
		)
		return nil, fmt.Errorf("create bus: %w", err)
	}

	s.log.Info("Bus created",
		zap.String("bus_id", bus.ID.String()),
		zap.String("registration_number", bus.RegistrationNumber),
	)

	resp := response.BusToResponse(bus)
	return &resp, nil
}

func (s *busService) UpdateBus(ctx context.Context, busID string, req *request.BusUpdateRequest) (*response.BusResponse, error) {
	id, err := uuid.Parse(busID)
	if err != nil {
		return nil, fmt.Errorf("invalid bus ID format %s: %w", busID, err)
	}

	if req.ID != nil && *req.ID != busID {
		return nil, fmt.Errorf("id mismatch: path %s payload %s", busID, *req.ID)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update bus validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bus, err := s.repo.Bus.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get bus %s: %w", busID, err)
	}
	if bus == nil {
		return nil, fmt.Errorf("bus %s not found", busID)
	}

	// Overwrite semantics: last writer wins. A concurrent delete surfaces as
	// not found from the repository.
	bus.RegistrationNumber = req.RegistrationNumber
	bus.Capacity = req.Capacity
	bus.Description = req.Description
	bus.UpdatedAt = time.Now()

	if err := s.repo.Bus.Update(ctx, bus); err != nil {
		s.log.Error("Failed to update bus", zap.Error(err), zap.String("bus_id", busID))
		return nil, fmt.Errorf("update bus %s: %w", busID, err)
	}

	s.log.Info("Bus updated", zap.String("bus_id", busID))

	resp := response.BusToResponse(bus)
	return &resp, nil
}

func (s *busService) DeleteBus(ctx context.Context, busID string) error {
	id, err := uuid.Parse(busID)
	if err != nil {
		return fmt.Errorf("invalid bus ID format %s: %w", busID, err)
	}

	// Restrict: refuse to orphan trips that still reference this bus.
	tripCount, err := s.repo.Trip.CountByBusID(ctx, id)
	if err != nil {
		return fmt.Errorf("count trips for bus %s: %w", busID, err)
	}
	if tripCount > 0 {
		return fmt.Errorf("bus %s is in use by %d trip(s)", busID, tripCount)
	}

	deleted, err := s.repo.Bus.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete bus", zap.Error(err), zap.String("bus_id", busID))
		return fmt.Errorf("delete bus %s: %w", busID, err)
	}
	if !deleted {
		return fmt.Errorf("bus %s not found", busID)
	}

	return nil
}
