package response

import (
	"time"

	"bus-fleet/internal/data/entity"
)

type PassengerResponse struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       *string   `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func PassengerToResponse(passenger *entity.Passenger) PassengerResponse {
	return PassengerResponse{
		ID:          passenger.ID.String(),
		FullName:    passenger.FullName,
		PhoneNumber: passenger.PhoneNumber,
		Email:       passenger.Email,
		CreatedAt:   passenger.CreatedAt,
		UpdatedAt:   passenger.UpdatedAt,
	}
}
