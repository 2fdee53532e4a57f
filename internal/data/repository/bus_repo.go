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

type BusRepository interface {
	Create(ctx context.Context, bus *entity.Bus) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bus, error)
	FindPage(ctx context.Context, limit, offset int) ([]*entity.Bus, error)
	FindAll(ctx context.Context) ([]*entity.Bus, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, bus *entity.Bus) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type busRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBusRepository(db database.PgxIface, log *zap.Logger) BusRepository {
	return &busRepository{
		db:  db,
		log: log.With(zap.String("repository", "bus")),
	}
}

func (r *busRepository) Create(ctx context.Context, bus *entity.Bus) error {
	query := `
		INSERT INTO buses (id, registration_number, capacity, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		bus.ID,
		bus.RegistrationNumber,
		bus.Capacity,
		bus.Description,
		bus.CreatedAt,
		bus.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create bus",
			zap.Error(err),
			zap.String("registration_number", bus.RegistrationNumber),
		)
		return fmt.Errorf("create bus %s: %w", bus.RegistrationNumber, err)
	}

	return nil
}

func (r *busRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bus, error) {
	query := `
		SELECT id, registration_number, capacity, description, created_at, updated_at
		FROM buses
		WHERE id = $1
	`

	var bus entity.Bus
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bus.ID,
		&bus.RegistrationNumber,
		&bus.Capacity,
		&bus.Description,
		&bus.CreatedAt,
		&bus.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find bus by ID",
			zap.Error(err),
			zap.String("bus_id", id.String()),
		)
		return nil, fmt.Errorf("find bus by ID %s: %w", id.String(), err)
	}

	return &bus, nil
}

func (r *busRepository) FindPage(ctx context.Context, limit, offset int) ([]*entity.Bus, error) {
	query := `
		SELECT id, registration_number, capacity, description, created_at, updated_at
		FROM buses
		ORDER BY registration_number
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find buses", zap.Error(err))
		return nil, fmt.Errorf("find buses: %w", err)
	}
	defer rows.Close()

	return scanBuses(rows)
}

func (r *busRepository) FindAll(ctx context.Context) ([]*entity.Bus, error) {
	query := `
		SELECT id, registration_number, capacity, description, created_at, updated_at
		FROM buses
		ORDER BY registration_number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all buses", zap.Error(err))
		return nil, fmt.Errorf("find all buses: %w", err)
	}
	defer rows.Close()

	return scanBuses(rows)
}

func scanBuses(rows pgx.Rows) ([]*entity.Bus, error) {
	var buses []*entity.Bus
	for rows.Next() {
		var bus entity.Bus
		err := rows.Scan(
			&bus.ID,
			&bus.RegistrationNumber,
			&bus.Capacity,
			&bus.Description,
			&bus.CreatedAt,
			&bus.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan bus row: %w", err)
		}
		buses = append(buses, &bus)
	}

	return buses, rows.Err()
}

func (r *busRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM buses`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count buses", zap.Error(err))
		return 0, fmt.Errorf("count buses: %w", err)
	}
	return total, nil
}

func (r *busRepository) Update(ctx context.Context, bus *entity.Bus) error {
	query := `
		UPDATE buses
		SET registration_number = $2, capacity = $3, description = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		bus.ID,
		bus.RegistrationNumber,
		bus.Capacity,
		bus.Description,
		bus.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update bus",
			zap.Error(err),
			zap.String("bus_id", bus.ID.String()),
		)
		return fmt.Errorf("update bus %s: %w", bus.ID.String(), err)
	}

	// Zero rows means a concurrent delete won; report it as not found.
	if result.RowsAffected() == 0 {
		return fmt.Errorf("bus %s not found", bus.ID.String())
	}

	return nil
}

func (r *busRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM buses WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete bus",
			zap.Error(err),
			zap.String("bus_id", id.String()),
		)
		return false, fmt.Errorf("delete bus %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Bus deleted", zap.String("bus_id", id.String()))
	return true, nil
}
