package response

import (
	"event-booking/internal/data/entity"
	"time"
)

type HotelResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type HotelWithRoomsResponse struct {
	HotelResponse
	Rooms []RoomResponse `json:"Rooms"`
}

type RoomResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int       `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Helper converters
func HotelToResponse(hotel *entity.Hotel) HotelResponse {
	return HotelResponse{
		ID:        hotel.ID,
		Name:      hotel.Name,
		Image:     hotel.Image,
		CreatedAt: hotel.CreatedAt,
		UpdatedAt: hotel.UpdatedAt,
	}
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:        room.ID,
		Name:      room.Name,
		Capacity:  room.Capacity,
		HotelID:   room.HotelID,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}
