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

type BookingService interface {
	GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetBookingRefs(ctx context.Context) (*response.BookingRefsResponse, error)
	CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, req *request.BookingUpdateRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindPageDetailed(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingDetailToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get booking by ID", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// GetBookingRefs returns the dropdown datasets for the booking create/edit
// form: every trip with a composite human-readable label, plus all passengers.
func (s *bookingService) GetBookingRefs(ctx context.Context) (*response.BookingRefsResponse, error) {
	trips, err := s.repo.Trip.FindAllDetailed(ctx)
	if err != nil {
		s.log.Error("Failed to get trips for booking refs", zap.Error(err))
		return nil, fmt.Errorf("get trips for booking refs: %w", err)
	}

	passengers, err := s.repo.Passenger.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get passengers for booking refs", zap.Error(err))
		return nil, fmt.Errorf("get passengers for booking refs: %w", err)
	}

	refs := &response.BookingRefsResponse{
		Trips:      make([]response.TripOption, len(trips)),
		Passengers: make([]response.PassengerOption, len(passengers)),
	}
	for i, trip := range trips {
		refs.Trips[i] = response.TripOption{
			ID:    trip.ID.String(),
			Label: tripOptionLabel(trip),
		}
	}
	for i, passenger := range passengers {
		refs.Passengers[i] = response.PassengerOption{
			ID:       passenger.ID.String(),
			FullName: passenger.FullName,
		}
	}

	return refs, nil
}

func tripOptionLabel(trip *entity.TripDetail) string {
	return fmt.Sprintf("Trip #%s - Bus: %s (%s)",
		trip.ID.String()[:8], trip.BusLabel(), trip.RouteLabel())
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	tripID, passengerID, err := s.resolveRefs(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TripID:      tripID,
		PassengerID: passengerID,
		SeatNumber:  req.SeatNumber,
		BookingDate: req.BookingDate,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", zap.Error(err))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("trip_id", booking.TripID.String()),
		zap.Int("seat_number", booking.SeatNumber),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.BookingUpdateRequest) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	if req.ID != nil && *req.ID != bookingID {
		return nil, fmt.Errorf("id mismatch: path %s payload %s", bookingID, *req.ID)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	tripID, passengerID, err := s.resolveRefs(ctx, &req.BookingRequest)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	booking.TripID = tripID
	booking.PassengerID = passengerID
	booking.SeatNumber = req.SeatNumber
	booking.BookingDate = req.BookingDate
	booking.UpdatedAt = time.Now()

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("update booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking updated", zap.String("booking_id", bookingID))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	deleted, err := s.repo.Booking.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("delete booking %s: %w", bookingID, err)
	}
	if !deleted {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	return nil
}

func (s *bookingService) resolveRefs(ctx context.Context, req *request.BookingRequest) (uuid.UUID, uuid.UUID, error) {
	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid trip ID format %s: %w", req.TripID, err)
	}
	passengerID, err := uuid.Parse(req.PassengerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid passenger ID format %s: %w", req.PassengerID, err)
	}

	trip, err := s.repo.Trip.FindByID(ctx, tripID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("get trip %s: %w", req.TripID, err)
	}
	if trip == nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("validation failed: trip %s does not exist", req.TripID)
	}

	passenger, err := s.repo.Passenger.FindByID(ctx, passengerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("get passenger %s: %w", req.PassengerID, err)
	}
	if passenger == nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("validation failed: passenger %s does not exist", req.PassengerID)
	}

	return tripID, passengerID, nil
}
