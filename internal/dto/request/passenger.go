package request

type PassengerRequest struct {
	FullName    string  `json:"full_name" validate:"required,min=1,max=100"`
	PhoneNumber string  `json:"phone_number" validate:"required,min=3,max=30"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
}

type PassengerUpdateRequest struct {
	ID *string `json:"id,omitempty" validate:"omitempty,uuid"`
	PassengerRequest
}
