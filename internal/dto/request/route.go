package request

type RouteRequest struct {
	FromCity   string  `json:"from_city" validate:"required,min=1,max=100"`
	ToCity     string  `json:"to_city" validate:"required,min=1,max=100"`
	DistanceKm float64 `json:"distance_km" validate:"gte=0"`
}

type RouteUpdateRequest struct {
	ID *string `json:"id,omitempty" validate:"omitempty,uuid"`
	RouteRequest
}
