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

type PassengerService interface {
	GetPassengers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PassengerResponse], error)
	GetPassengerByID(ctx context.Context, passengerID string) (*response.PassengerResponse, error)
	CreatePassenger(ctx context.Context, req *request.PassengerRequest) (*response.PassengerResponse, error)
	UpdatePassenger(ctx context.Context, passengerID string, req *request.PassengerUpdateRequest) (*response.PassengerResponse, error)
	DeletePassenger(ctx context.Context, passengerID string) error
}

type passengerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPassengerService(repo *repository.Repository, log *zap.Logger) PassengerService {
	return &passengerService{
		repo: repo,
		log:  log.With(zap.String("service", "passenger")),
	}
}

func (s *passengerService) GetPassengers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PassengerResponse], error) {
	passengers, err := s.repo.Passenger.FindPage(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get passengers", zap.Error(err))
		return nil, fmt.Errorf("get passengers: %w", err)
	}

	total, err := s.repo.Passenger.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count passengers", zap.Error(err))
		return nil, fmt.Errorf("count passengers: %w", err)
	}

	passengerResponses := make([]response.PassengerResponse, len(passengers))
	for i, passenger := range passengers {
		passengerResponses[i] = response.PassengerToResponse(passenger)
	}

	return response.NewPaginatedResponse(passengerResponses, req.Page, req.PerPage, total), nil
}

func (s *passengerService) GetPassengerByID(ctx context.Context, passengerID string) (*response.PassengerResponse, error) {
	id, err := uuid.Parse(passengerID)
	if err != nil {
		return nil, fmt.Errorf("invalid passenger ID format %s: %w", passengerID, err)
	}

	passenger, err := s.repo.Passenger.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get passenger by ID", zap.Error(err), zap.String("passenger_id", passengerID))
		return nil, fmt.Errorf("get passenger %s: %w", passengerID, err)
	}
	if passenger == nil {
		return nil, fmt.Errorf("passenger %s not found", passengerID)
	}

	resp := response.PassengerToResponse(passenger)
	return &resp, nil
}

func (s *passengerService) CreatePassenger(ctx context.Context, req *request.PassengerRequest) (*response.PassengerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create passenger validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	passenger := &entity.Passenger{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}

	if err := s.repo.Passenger.Create(ctx, passenger); err != nil {
		s.log.Error("Failed to create passenger",
			zap.Error(err),
			zap.String("full_name", req.FullName),
		)
		return nil, fmt.Errorf("create passenger: %w", err)
	}

	s.log.Info("Passenger created",
		zap.String("passenger_id", passenger.ID.String()),
		zap.String("full_name", passenger.FullName),
	)

	resp := response.PassengerToResponse(passenger)
	return &resp, nil
}

func (s *passengerService) UpdatePassenger(ctx context.Context, passengerID string, req *request.PassengerUpdateRequest) (*response.PassengerResponse, error) {
	id, err := uuid.Parse(passengerID)
	if err != nil {
		return nil, fmt.Errorf("invalid passenger ID format %s: %w", passengerID, err)
	}

	if req.ID != nil && *req.ID != passengerID {
		return nil, fmt.Errorf("id mismatch: path %s payload %s", passengerID, *req.ID)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update passenger validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	passenger, err := s.repo.Passenger.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get passenger %s: %w", passengerID, err)
	}
	if passenger == nil {
		return nil, fmt.Errorf("passenger %s not found", passengerID)
	}

	passenger.FullName = req.FullName
	passenger.PhoneNumber = req.PhoneNumber
	passenger.Email = req.Email
	passenger.UpdatedAt = time.Now()

	if err := s.repo.Passenger.Update(ctx, passenger); err != nil {
		s.log.Error("Failed to update passenger", zap.Error(err), zap.String("passenger_id", passengerID))
		return nil, fmt.Errorf("update passenger %s: %w", passengerID, err)
	}

	s.log.Info("Passenger updated", zap.String("passenger_id", passengerID))

	resp := response.PassengerToResponse(passenger)
	return &resp, nil
}

func (s *passengerService) DeletePassenger(ctx context.Context, passengerID string) error {
	id, err := uuid.Parse(passengerID)
	if err != nil {
		return fmt.Errorf("invalid passenger ID format %s: %w", passengerID, err)
	}

	bookingCount, err := s.repo.Booking.CountByPassengerID(ctx, id)
	if err != nil {
		return fmt.Errorf("count bookings for passenger %s: %w", passengerID, err)
	}
	if bookingCount > 0 {
		return fmt.Errorf("passenger %s is in use by %d booking(s)", passengerID, bookingCount)
	}

	deleted, err := s.repo.Passenger.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete passenger", zap.Error(err), zap.String("passenger_id", passengerID))
		return fmt.Errorf("delete passenger %s: %w", passengerID, err)
	}
	if !deleted {
		return fmt.Errorf("passenger %s not found", passengerID)
	}

	return nil
}
