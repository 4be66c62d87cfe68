package wire

import (
	"event-booking/internal/adaptor"
	"event-booking/internal/data/repository"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHotel(
	r chi.Router,
	hotelHandler *adaptor.HotelHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/hotels", func(r chi.Router) {
		r.Use(authenticated(repo, config, log))

		r.Get("/", hotelHandler.ListHotels)
		r.Get("/{hotelId}", hotelHandler.ListHotelRooms)
	})
}
