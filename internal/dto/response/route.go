package response

import (
	"time"

	"bus-fleet/internal/data/entity"
)

type RouteResponse struct {
	ID         string    `json:"id"`
	FromCity   string    `json:"from_city"`
	ToCity     string    `json:"to_city"`
	DistanceKm float64   `json:"distance_km"`
	Label      string    `json:"label"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func RouteToResponse(route *entity.Route) RouteResponse {
	return RouteResponse{
		ID:         route.ID.String(),
		FromCity:   route.FromCity,
		ToCity:     route.ToCity,
		DistanceKm: route.DistanceKm,
		Label:      route.Label(),
		CreatedAt:  route.CreatedAt,
		UpdatedAt:  route.UpdatedAt,
	}
}
