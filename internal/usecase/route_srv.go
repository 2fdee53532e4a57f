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

type RouteService interface {
	GetRoutes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RouteResponse], error)
	GetRouteByID(ctx context.Context, routeID string) (*response.RouteResponse, error)
	CreateRoute(ctx context.Context, req *request.RouteRequest) (*response.RouteResponse, error)
	UpdateRoute(ctx context.Context, routeID string, req *request.RouteUpdateRequest) (*response.RouteResponse, error)
	DeleteRoute(ctx context.Context, routeID string) error
}

type routeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRouteService(repo *repository.Repository, log *zap.Logger) RouteService {
	return &routeService{
		repo: repo,
		log:  log.With(zap.String("service", "route")),
	}
}

func (s *routeService) GetRoutes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RouteResponse], error) {
	routes, err := s.repo.Route.FindPage(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get routes", zap.Error(err))
		return nil, fmt.Errorf("get routes: %w", err)
	}

	total, err := s.repo.Route.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count routes", zap.Error(err))
		return nil, fmt.Errorf("count routes: %w", err)
	}

	routeResponses := make([]response.RouteResponse, len(routes))
	for i, route := range routes {
		routeResponses[i] = response.RouteToResponse(route)
	}

	return response.NewPaginatedResponse(routeResponses, req.Page, req.PerPage, total), nil
}

func (s *routeService) GetRouteByID(ctx context.Context, routeID string) (*response.RouteResponse, error) {
	id, err := uuid.Parse(routeID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID format %s: %w", routeID, err)
	}

	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get route by ID", zap.Error(err), zap.String("route_id", routeID))
		return nil, fmt.Errorf("get route %s: %w", routeID, err)
	}
	if route == nil {
		return nil, fmt.Errorf("route %s not found", routeID)
	}

	resp := response.RouteToResponse(route)
	return &resp, nil
}

func (s *routeService) CreateRoute(ctx context.Context, req *request.RouteRequest) (*response.RouteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create route validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	route := &entity.Route{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FromCity:   req.FromCity,
		ToCity:     req.ToCity,
		DistanceKm: req.DistanceKm,
	}

	if err := s.repo.Route.Create(ctx, route); err != nil {
		s.log.Error("Failed to create route",
			zap.Error(err),
			zap.String("from_city", req.FromCity),
			zap.String("to_city", req.ToCity),
		)
		return nil, fmt.Errorf("create route: %w", err)
	}

	s.log.Info("Route created",
		zap.String("route_id", route.ID.String()),
		zap.String("label", route.Label()),
	)

	resp := response.RouteToResponse(route)
	return &resp, nil
}

func (s *routeService) UpdateRoute(ctx context.Context, routeID string, req *request.RouteUpdateRequest) (*response.RouteResponse, error) {
	id, err := uuid.Parse(routeID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID format %s: %w", routeID, err)
	}

	if req.ID != nil && *req.ID != routeID {
		return nil, fmt.Errorf("id mismatch: path %s payload %s", routeID, *req.ID)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update route validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get route %s: %w", routeID, err)
	}
	if route == nil {
		return nil, fmt.Errorf("route %s not found", routeID)
	}

	route.FromCity = req.FromCity
	route.ToCity = req.ToCity
	route.DistanceKm = req.DistanceKm
	route.UpdatedAt = time.Now()

	if err := s.repo.Route.Update(ctx, route); err != nil {
		s.log.Error("Failed to update route", zap.Error(err), zap.String("route_id", routeID))
		return nil, fmt.Errorf("update route %s: %w", routeID, err)
	}

	s.log.Info("Route updated", zap.String("route_id", routeID))

	resp := response.RouteToResponse(route)
	return &resp, nil
}

func (s *routeService) DeleteRoute(ctx context.Context, routeID string) error {
	id, err := uuid.Parse(routeID)
	if err != nil {
		return fmt.Errorf("invalid route ID format %s: %w", routeID, err)
	}

	tripCount, err := s.repo.Trip.CountByRouteID(ctx, id)
	if err != nil {
		return fmt.Errorf("count trips for route %s: %w", routeID, err)
	}
	if tripCount > 0 {
		return fmt.Errorf("route %s is in use by %d trip(s)", routeID, tripCount)
	}

	deleted, err := s.repo.Route.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete route", zap.Error(err), zap.String("route_id", routeID))
		return fmt.Errorf("delete route %s: %w", routeID, err)
	}
	if !deleted {
		return fmt.Errorf("route %s not found", routeID)
	}

	return nil
}
