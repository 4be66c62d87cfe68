package entity

type Hotel struct {
	Base
	Name  string `db:"name"`
	Image string `db:"image"`
}

type Room struct {
	Base
	HotelID  int    `db:"hotel_id"`
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
}
