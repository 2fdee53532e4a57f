package entity

type Passenger struct {
	Base
	FullName    string  `db:"full_name"`
	PhoneNumber string  `db:"phone_number"`
	Email       *string `db:"email"`
}
