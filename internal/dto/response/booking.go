package response

import (
	"event-booking/internal/data/entity"
)

type BookingResponse struct {
	ID   int          `json:"id"`
	Room RoomResponse `json:"Room"`
}

type BookingCreatedResponse struct {
	BookingID int `json:"bookingId"`
}

type BookingChangedResponse struct {
	RoomID int `json:"roomId"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{ID: booking.ID}
	if booking.Room != nil {
		resp.Room = RoomToResponse(booking.Room)
	}
	return resp
}
