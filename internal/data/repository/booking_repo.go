package repository

import (
	"context"
	"fmt"
	"time"

	"bus-fleet/internal/data/entity"
	"bus-fleet/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindPageDetailed(ctx context.Context, limit, offset int) ([]*entity.BookingDetail, error)
	CountAll(ctx context.Context) (int64, error)
	CountByTripIDs(ctx context.Context, tripIDs []uuid.UUID) (map[uuid.UUID]int, error)
	CountAllByTrip(ctx context.Context) (map[uuid.UUID]int, error)
	CountByTripID(ctx context.Context, tripID uuid.UUID) (int64, error)
	CountByPassengerID(ctx context.Context, passengerID uuid.UUID) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, trip_id, passenger_id, seat_number, booking_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.TripID,
		booking.PassengerID,
		booking.SeatNumber,
		booking.BookingDate,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("trip_id", booking.TripID.String()),
			zap.String("passenger_id", booking.PassengerID.String()),
			zap.Int("seat_number", booking.SeatNumber),
		)
		return fmt.Errorf("create booking for trip %s passenger %s: %w",
			booking.TripID.String(), booking.PassengerID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, trip_id, passenger_id, seat_number, booking_date, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.TripID,
		&booking.PassengerID,
		&booking.SeatNumber,
		&booking.BookingDate,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindPageDetailed(ctx context.Context, limit, offset int) ([]*entity.BookingDetail, error) {
	query := `
		SELECT bk.id, bk.trip_id, bk.passenger_id, bk.seat_number, bk.booking_date,
		       bk.created_at, bk.updated_at,
		       t.id, t.departure_time, t.arrival_time,
		       p.id, p.full_name, p.phone_number
		FROM bookings bk
		LEFT JOIN trips t ON t.id = bk.trip_id
		LEFT JOIN passengers p ON p.id = bk.passenger_id
		ORDER BY bk.booking_date DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var details []*entity.BookingDetail
	for rows.Next() {
		var (
			detail      entity.BookingDetail
			tripID      *uuid.UUID
			departure   *time.Time
			arrival     *time.Time
			passengerID *uuid.UUID
			fullName    *string
			phone       *string
		)

		err := rows.Scan(
			&detail.ID,
			&detail.TripID,
			&detail.PassengerID,
			&detail.SeatNumber,
			&detail.BookingDate,
			&detail.CreatedAt,
			&detail.UpdatedAt,
			&tripID,
			&departure,
			&arrival,
			&passengerID,
			&fullName,
			&phone,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking detail row: %w", err)
		}

		if tripID != nil {
			trip := &entity.Trip{DepartureTime: *departure, ArrivalTime: *arrival}
			trip.ID = *tripID
			detail.Trip = trip
		}
		if passengerID != nil {
			passenger := &entity.Passenger{FullName: *fullName, PhoneNumber: *phone}
			passenger.ID = *passengerID
			detail.Passenger = passenger
		}

		details = append(details, &detail)
	}

	return details, rows.Err()
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return total, nil
}

// CountByTripIDs returns booking counts grouped by trip, restricted to the
// given trip ids. One query, no per-trip scans.
func (r *bookingRepository) CountByTripIDs(ctx context.Context, tripIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(tripIDs))
	if len(tripIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT trip_id, COUNT(*)
		FROM bookings
		WHERE trip_id = ANY($1)
		GROUP BY trip_id
	`

	rows, err := r.db.Query(ctx, query, tripIDs)
	if err != nil {
		r.log.Error("Failed to count bookings by trip ids", zap.Error(err))
		return nil, fmt.Errorf("count bookings by trip ids: %w", err)
	}
	defer rows.Close()

	return scanTripCounts(rows, counts)
}

// CountAllByTrip returns booking counts grouped by trip over all bookings.
func (r *bookingRepository) CountAllByTrip(ctx context.Context) (map[uuid.UUID]int, error) {
	query := `
		SELECT trip_id, COUNT(*)
		FROM bookings
		GROUP BY trip_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to count all bookings by trip", zap.Error(err))
		return nil, fmt.Errorf("count all bookings by trip: %w", err)
	}
	defer rows.Close()

	return scanTripCounts(rows, make(map[uuid.UUID]int))
}

func scanTripCounts(rows pgx.Rows, counts map[uuid.UUID]int) (map[uuid.UUID]int, error) {
	for rows.Next() {
		var (
			tripID uuid.UUID
			count  int
		)
		if err := rows.Scan(&tripID, &count); err != nil {
			return nil, fmt.Errorf("scan booking count row: %w", err)
		}
		counts[tripID] = count
	}

	return counts, rows.Err()
}

func (r *bookingRepository) CountByTripID(ctx context.Context, tripID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE trip_id = $1`, tripID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count bookings by trip",
			zap.Error(err),
			zap.String("trip_id", tripID.String()),
		)
		return 0, fmt.Errorf("count bookings by trip %s: %w", tripID.String(), err)
	}
	return total, nil
}

func (r *bookingRepository) CountByPassengerID(ctx context.Context, passengerID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE passenger_id = $1`, passengerID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count bookings by passenger",
			zap.Error(err),
			zap.String("passenger_id", passengerID.String()),
		)
		return 0, fmt.Errorf("count bookings by passenger %s: %w", passengerID.String(), err)
	}
	return total, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET trip_id = $2, passenger_id = $3, seat_number = $4, booking_date = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.TripID,
		booking.PassengerID,
		booking.SeatNumber,
		booking.BookingDate,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return false, fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return true, nil
}
