package wire

import (
	"event-booking/internal/adaptor"
	"event-booking/internal/data/repository"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/booking", func(r chi.Router) {
		r.Use(authenticated(repo, config, log))

		// GET /booking - the caller's booking with its room
		r.Get("/", bookingHandler.ListBooking)

		// POST /booking - reserve a room
		r.Post("/", bookingHandler.CreateBooking)

		// PUT /booking/{bookingId} - move the booking to another room
		r.Put("/{bookingId}", bookingHandler.ChangeBooking)
	})
}
