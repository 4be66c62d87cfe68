package request

type BookingRequest struct {
	RoomID int `json:"roomId" validate:"required,gt=0"`
}
