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

type RouteRepository interface {
	Create(ctx context.Context, route *entity.Route) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error)
	FindPage(ctx context.Context, limit, offset int) ([]*entity.Route, error)
	FindAll(ctx context.Context) ([]*entity.Route, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, route *entity.Route) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type routeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRouteRepository(db database.PgxIface, log *zap.Logger) RouteRepository {
	return &routeRepository{
		db:  db,
		log: log.With(zap.String("repository", "route")),
	}
}

func (r *routeRepository) Create(ctx context.Context, route *entity.Route) error {
	query := `
		INSERT INTO routes (id, from_city, to_city, distance_km, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		route.ID,
		route.FromCity,
		route.ToCity,
		route.DistanceKm,
		route.CreatedAt,
		route.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create route",
			zap.Error(err),
			zap.String("from_city", route.FromCity),
			zap.String("to_city", route.ToCity),
		)
		return fmt.Errorf("create route %s: %w", route.Label(), err)
	}

	return nil
}

func (r *routeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	query := `
		SELECT id, from_city, to_city, distance_km, created_at, updated_at
		FROM routes
		WHERE id = $1
	`

	var route entity.Route
	err := r.db.QueryRow(ctx, query, id).Scan(
		&route.ID,
		&route.FromCity,
		&route.ToCity,
		&route.DistanceKm,
		&route.CreatedAt,
		&route.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find route by ID",
			zap.Error(err),
			zap.String("route_id", id.String()),
		)
		return nil, fmt.Errorf("find route by ID %s: %w", id.String(), err)
	}

	return &route, nil
}

func (r *routeRepository) FindPage(ctx context.Context, limit, offset int) ([]*entity.Route, error) {
	query := `
		SELECT id, from_city, to_city, distance_km, created_at, updated_at
		FROM routes
		ORDER BY from_city, to_city
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find routes", zap.Error(err))
		return nil, fmt.Errorf("find routes: %w", err)
	}
	defer rows.Close()

	return scanRoutes(rows)
}

func (r *routeRepository) FindAll(ctx context.Context) ([]*entity.Route, error) {
	query := `
		SELECT id, from_city, to_city, distance_km, created_at, updated_at
		FROM routes
		ORDER BY from_city, to_city
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all routes", zap.Error(err))
		return nil, fmt.Errorf("find all routes: %w", err)
	}
	defer rows.Close()

	return scanRoutes(rows)
}

func scanRoutes(rows pgx.Rows) ([]*entity.Route, error) {
	var routes []*entity.Route
	for rows.Next() {
		var route entity.Route
		err := rows.Scan(
			&route.ID,
			&route.FromCity,
			&route.ToCity,
			&route.DistanceKm,
			&route.CreatedAt,
			&route.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan route row: %w", err)
		}
		routes = append(routes, &route)
	}

	return routes, rows.Err()
}

func (r *routeRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM routes`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count routes", zap.Error(err))
		return 0, fmt.Errorf("count routes: %w", err)
	}
	return total, nil
}

func (r *routeRepository) Update(ctx context.Context, route *entity.Route) error {
	query := `
		UPDATE routes
		SET from_city = $2, to_city = $3, distance_km = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		route.ID,
		route.FromCity,
		route.ToCity,
		route.DistanceKm,
		route.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update route",
			zap.Error(err),
			zap.String("route_id", route.ID.String()),
		)
		return fmt.Errorf("update route %s: %w", route.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("route %s not found", route.ID.String())
	}

	return nil
}

func (r *routeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete route",
			zap.Error(err),
			zap.String("route_id", id.String()),
		)
		return false, fmt.Errorf("delete route %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Route deleted", zap.String("route_id", id.String()))
	return true, nil
}
