package response

import (
	"time"

	"bus-fleet/internal/data/entity"
)

type BusResponse struct {
	ID                 string    `json:"id"`
	RegistrationNumber string    `json:"registration_number"`
	Capacity           int       `json:"capacity"`
	Description        *string   `json:"description,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func BusToResponse(bus *entity.Bus) BusResponse {
	return BusResponse{
		ID:                 bus.ID.String(),
		RegistrationNumber: bus.RegistrationNumber,
		Capacity:           bus.Capacity,
		Description:        bus.Description,
		CreatedAt:          bus.CreatedAt,
		UpdatedAt:          bus.UpdatedAt,
	}
}
