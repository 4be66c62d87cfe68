package entity

import "time"

// Enrollment is a user's registration for the event. One per user.
type Enrollment struct {
	Base
	UserID   int       `db:"user_id"`
	Name     string    `db:"name"`
	CPF      string    `db:"cpf"`
	Birthday time.Time `db:"birthday"`
	Phone    string    `db:"phone"`
}
