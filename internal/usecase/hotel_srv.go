package usecase

import (
	"context"
	"fmt"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/response"
	"event-booking/pkg/cache"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

const hotelsCacheKey = "hotels:all"

type HotelService interface {
	ListHotels(ctx context.Context, userID int) ([]response.HotelResponse, error)
	ListHotelRooms(ctx context.Context, hotelID int) (*response.HotelWithRoomsResponse, error)
}

type hotelService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewHotelService(repo *repository.Repository, c *cache.Cache, log *zap.Logger) HotelService {
	return &hotelService{
		repo:  repo,
		cache: c,
		log:   log.With(zap.String("service", "hotel")),
	}
}

// ListHotels only asks for a paid ticket that includes accommodation.
// Remote tickets are not excluded here.
func (s *hotelService) ListHotels(ctx context.Context, userID int) ([]response.HotelResponse, error) {
	ticket, err := s.repo.Ticket.FindPaidHotelTicketByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	if ticket == nil {
		s.log.Warn("Hotel listing refused", zap.Int("user_id", userID))
		return nil, utils.UnauthorizedError("user does not have a paid ticket with hotel")
	}

	return cache.Remember(ctx, s.cache, hotelsCacheKey, s.loadHotels)
}

func (s *hotelService) loadHotels(ctx context.Context) ([]response.HotelResponse, error) {
	hotels, err := s.repo.Hotel.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}

	resp := make([]response.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		resp = append(resp, response.HotelToResponse(hotel))
	}
	return resp, nil
}

func (s *hotelService) ListHotelRooms(ctx context.Context, hotelID int) (*response.HotelWithRoomsResponse, error) {
	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("list hotel rooms: %w", err)
	}
	if hotel == nil {
		return nil, utils.NotFoundError("hotel not found")
	}

	rooms, err := s.repo.Hotel.FindRoomsByHotelID(ctx, hotel.ID)
	if err != nil {
		return nil, fmt.Errorf("list hotel rooms: %w", err)
	}

	return &response.HotelWithRoomsResponse{
		HotelResponse: response.HotelToResponse(hotel),
		Rooms:         roomsToResponse(rooms),
	}, nil
}

func roomsToResponse(rooms []*entity.Room) []response.RoomResponse {
	resp := make([]response.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, response.RoomToResponse(room))
	}
	return resp
}
