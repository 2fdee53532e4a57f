package request

type BusRequest struct {
	RegistrationNumber string  `json:"registration_number" validate:"required,min=1,max=50"`
	Capacity           int     `json:"capacity" validate:"required,gt=0"`
	Description        *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// BusUpdateRequest carries the same fields as create plus an optional ID that,
// when present, must match the path id.
type BusUpdateRequest struct {
	ID *string `json:"id,omitempty" validate:"omitempty,uuid"`
	BusRequest
}
