package entity

type Bus struct {
	Base
	RegistrationNumber string  `db:"registration_number"`
	Capacity           int     `db:"capacity"`
	Description        *string `db:"description"`
}
