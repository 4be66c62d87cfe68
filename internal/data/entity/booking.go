package entity

// Booking holds a user's room reservation. A user has at most one.
type Booking struct {
	Base
	UserID int `db:"user_id"`
	RoomID int `db:"room_id"`

	Room *Room `db:"-"`
}
