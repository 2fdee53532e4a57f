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

type TripRepository interface {
	Create(ctx context.Context, trip *entity.Trip) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.TripDetail, error)
	FindPageDetailed(ctx context.Context, limit, offset int) ([]*entity.TripDetail, error)
	FindAllDetailed(ctx context.Context) ([]*entity.TripDetail, error)
	FindAll(ctx context.Context) ([]*entity.Trip, error)
	FindUpcoming(ctx context.Context, now time.Time, limit int) ([]*entity.TripDetail, error)
	CountAll(ctx context.Context) (int64, error)
	CountByBusID(ctx context.Context, busID uuid.UUID) (int64, error)
	CountByRouteID(ctx context.Context, routeID uuid.UUID) (int64, error)
	Update(ctx context.Context, trip *entity.Trip) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type tripRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTripRepository(db database.PgxIface, log *zap.Logger) TripRepository {
	return &tripRepository{
		db:  db,
		log: log.With(zap.String("repository", "trip")),
	}
}

// Buses and routes are LEFT JOINed: a trip may reference a bus or route that
// was deleted after the trip was created, and detail rows must still surface.
const tripDetailSelect = `
	SELECT t.id, t.bus_id, t.route_id, t.departure_time, t.arrival_time,
	       t.created_at, t.updated_at,
	       b.id, b.registration_number, b.capacity,
	       r.id, r.from_city, r.to_city
	FROM trips t
	LEFT JOIN buses b ON b.id = t.bus_id
	LEFT JOIN routes r ON r.id = t.route_id
`

func (r *tripRepository) Create(ctx context.Context, trip *entity.Trip) error {
	query := `
		INSERT INTO trips (id, bus_id, route_id, departure_time, arrival_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		trip.ID,
		trip.BusID,
		trip.RouteID,
		trip.DepartureTime,
		trip.ArrivalTime,
		trip.CreatedAt,
		trip.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create trip",
			zap.Error(err),
			zap.String("bus_id", trip.BusID.String()),
			zap.String("route_id", trip.RouteID.String()),
			zap.Time("departure_time", trip.DepartureTime),
		)
		return fmt.Errorf("create trip for bus %s route %s: %w",
			trip.BusID.String(), trip.RouteID.String(), err)
	}

	return nil
}

func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	query := `
		SELECT id, bus_id, route_id, departure_time, arrival_time, created_at, updated_at
		FROM trips
		WHERE id = $1
	`

	var trip entity.Trip
	err := r.db.QueryRow(ctx, query, id).Scan(
		&trip.ID,
		&trip.BusID,
		&trip.RouteID,
		&trip.DepartureTime,
		&trip.ArrivalTime,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find trip by ID",
			zap.Error(err),
			zap.String("trip_id", id.String()),
		)
		return nil, fmt.Errorf("find trip by ID %s: %w", id.String(), err)
	}

	return &trip, nil
}

func (r *tripRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.TripDetail, error) {
	query := tripDetailSelect + ` WHERE t.id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to find trip detail",
			zap.Error(err),
			zap.String("trip_id", id.String()),
		)
		return nil, fmt.Errorf("find trip detail %s: %w", id.String(), err)
	}
	defer rows.Close()

	details, err := scanTripDetails(rows)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return details[0], nil
}

func (r *tripRepository) FindPageDetailed(ctx context.Context, limit, offset int) ([]*entity.TripDetail, error) {
	query := tripDetailSelect + ` ORDER BY t.departure_time LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find trips", zap.Error(err))
		return nil, fmt.Errorf("find trips: %w", err)
	}
	defer rows.Close()

	return scanTripDetails(rows)
}

func (r *tripRepository) FindAllDetailed(ctx context.Context) ([]*entity.TripDetail, error) {
	query := tripDetailSelect + ` ORDER BY t.departure_time`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all trips detailed", zap.Error(err))
		return nil, fmt.Errorf("find all trips detailed: %w", err)
	}
	defer rows.Close()

	return scanTripDetails(rows)
}

func (r *tripRepository) FindAll(ctx context.Context) ([]*entity.Trip, error) {
	query := `
		SELECT id, bus_id, route_id, departure_time, arrival_time, created_at, updated_at
		FROM trips
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all trips", zap.Error(err))
		return nil, fmt.Errorf("find all trips: %w", err)
	}
	defer rows.Close()

	var trips []*entity.Trip
	for rows.Next() {
		var trip entity.Trip
		err := rows.Scan(
			&trip.ID,
			&trip.BusID,
			&trip.RouteID,
			&trip.DepartureTime,
			&trip.ArrivalTime,
			&trip.CreatedAt,
			&trip.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan trip row: %w", err)
		}
		trips = append(trips, &trip)
	}

	return trips, rows.Err()
}

func (r *tripRepository) FindUpcoming(ctx context.Context, now time.Time, limit int) ([]*entity.TripDetail, error) {
	query := tripDetailSelect + `
		WHERE t.departure_time >= $1
		ORDER BY t.departure_time
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		r.log.Error("Failed to find upcoming trips",
			zap.Error(err),
			zap.Time("now", now),
		)
		return nil, fmt.Errorf("find upcoming trips: %w", err)
	}
	defer rows.Close()

	return scanTripDetails(rows)
}

func scanTripDetails(rows pgx.Rows) ([]*entity.TripDetail, error) {
	var details []*entity.TripDetail
	for rows.Next() {
		var (
			detail  entity.TripDetail
			busID   *uuid.UUID
			busReg  *string
			busCap  *int
			routeID *uuid.UUID
			from    *string
			to      *string
		)

		err := rows.Scan(
			&detail.ID,
			&detail.BusID,
			&detail.RouteID,
			&detail.DepartureTime,
			&detail.ArrivalTime,
			&detail.CreatedAt,
			&detail.UpdatedAt,
			&busID,
			&busReg,
			&busCap,
			&routeID,
			&from,
			&to,
		)
		if err != nil {
			return nil, fmt.Errorf("scan trip detail row: %w", err)
		}

		if busID != nil {
			bus := &entity.Bus{RegistrationNumber: *busReg, Capacity: *busCap}
			bus.ID = *busID
			detail.Bus = bus
		}
		if routeID != nil {
			route := &entity.Route{FromCity: *from, ToCity: *to}
			route.ID = *routeID
			detail.Route = route
		}

		details = append(details, &detail)
	}

	return details, rows.Err()
}

func (r *tripRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM trips`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count trips", zap.Error(err))
		return 0, fmt.Errorf("count trips: %w", err)
	}
	return total, nil
}

func (r *tripRepository) CountByBusID(ctx context.Context, busID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM trips WHERE bus_id = $1`, busID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count trips by bus",
			zap.Error(err),
			zap.String("bus_id", busID.String()),
		)
		return 0, fmt.Errorf("count trips by bus %s: %w", busID.String(), err)
	}
	return total, nil
}

func (r *tripRepository) CountByRouteID(ctx context.Context, routeID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM trips WHERE route_id = $1`, routeID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count trips by route",
			zap.Error(err),
			zap.String("route_id", routeID.String()),
		)
		return 0, fmt.Errorf("count trips by route %s: %w", routeID.String(), err)
	}
	return total, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *entity.Trip) error {
	query := `
		UPDATE trips
		SET bus_id = $2, route_id = $3, departure_time = $4, arrival_time = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		trip.ID,
		trip.BusID,
		trip.RouteID,
		trip.DepartureTime,
		trip.ArrivalTime,
		trip.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update trip",
			zap.Error(err),
			zap.String("trip_id", trip.ID.String()),
		)
		return fmt.Errorf("update trip %s: %w", trip.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trip %s not found", trip.ID.String())
	}

	return nil
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete trip",
			zap.Error(err),
			zap.String("trip_id", id.String()),
		)
		return false, fmt.Errorf("delete trip %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Trip deleted", zap.String("trip_id", id.String()))
	return true, nil
}
