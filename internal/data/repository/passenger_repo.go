package repository

import (
	"context"
	"fmt"

	"bus-fleet/internal/data/entity"
	"bus-fleet/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PassengerRepository interface {
	Create(ctx context.Context, passenger *entity.Passenger) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error)
	FindPage(ctx context.Context, limit, offset int) ([]*entity.Passenger, error)
	FindAll(ctx context.Context) ([]*entity.Passenger, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, passenger *entity.Passenger) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type passengerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPassengerRepository(db database.PgxIface, log *zap.Logger) PassengerRepository {
	return &passengerRepository{
		db:  db,
		log: log.With(zap.String("repository", "passenger")),
	}
}

func (r *passengerRepository) Create(ctx context.Context, passenger *entity.Passenger) error {
	query := `
		INSERT INTO passengers (id, full_name, phone_number, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		passenger.ID,
		passenger.FullName,
		passenger.PhoneNumber,
		passenger.Email,
		passenger.CreatedAt,
		passenger.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create passenger",
			zap.Error(err),
			zap.String("full_name", passenger.FullName),
		)
		return fmt.Errorf("create passenger %s: %w", passenger.FullName, err)
	}

	return nil
}

func (r *passengerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error) {
	query := `
		SELECT id, full_name, phone_number, email, created_at, updated_at
		FROM passengers
		WHERE id = $1
	`

	var passenger entity.Passenger
	err := r.db.QueryRow(ctx, query, id).Scan(
		&passenger.ID,
		&passenger.FullName,
		&passenger.PhoneNumber,
		&passenger.Email,
		&passenger.CreatedAt,
		&passenger.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find passenger by ID",
			zap.Error(err),
			zap.String("passenger_id", id.String()),
		)
		return nil, fmt.Errorf("find passenger by ID %s: %w", id.String(), err)
	}

	return &passenger, nil
}

func (r *passengerRepository) FindPage(ctx context.Context, limit, offset int) ([]*entity.Passenger, error) {
	query := `
		SELECT id, full_name, phone_number, email, created_at, updated_at
		FROM passengers
		ORDER BY full_name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find passengers", zap.Error(err))
		return nil, fmt.Errorf("find passengers: %w", err)
	}
	defer rows.Close()

	return scanPassengers(rows)
}

func (r *passengerRepository) FindAll(ctx context.Context) ([]*entity.Passenger, error) {
	query := `
		SELECT id, full_name, phone_number, email, created_at, updated_at
		FROM passengers
		ORDER BY full_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all passengers", zap.Error(err))
		return nil, fmt.Errorf("find all passengers: %w", err)
	}
	defer rows.Close()

	return scanPassengers(rows)
}

func scanPassengers(rows pgx.Rows) ([]*entity.Passenger, error) {
	var passengers []*entity.Passenger
	for rows.Next() {
		var passenger entity.Passenger
		err := rows.Scan(
			&passenger.ID,
			&passenger.FullName,
			&passenger.PhoneNumber,
			&passenger.Email,
			&passenger.CreatedAt,
			&passenger.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan passenger row: %w", err)
		}
		passengers = append(passengers, &passenger)
	}

	return passengers, rows.Err()
}

func (r *passengerRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM passengers`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count passengers", zap.Error(err))
		return 0, fmt.Errorf("count passengers: %w", err)
	}
	return total, nil
}

func (r *passengerRepository) Update(ctx context.Context, passenger *entity.Passenger) error {
	query := `
		UPDATE passengers
		SET full_name = $2, phone_number = $3, email = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		passenger.ID,
		passenger.FullName,
		passenger.PhoneNumber,
		passenger.Email,
		passenger.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update passenger",
			zap.Error(err),
			zap.String("passenger_id", passenger.ID.String()),
		)
		return fmt.Errorf("update passenger %s: %w", passenger.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("passenger %s not found", passenger.ID.String())
	}

	return nil
}

func (r *passengerRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM passengers WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete passenger",
			zap.Error(err),
			zap.String("passenger_id", id.String()),
		)
		return false, fmt.Errorf("delete passenger %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Passenger deleted", zap.String("passenger_id", id.String()))
	return true, nil
}
