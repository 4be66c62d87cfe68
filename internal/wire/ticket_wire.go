package wire

import (
	"event-booking/internal/adaptor"
	"event-booking/internal/data/repository"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTicket(
	r chi.Router,
	ticketHandler *adaptor.TicketHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/tickets", func(r chi.Router) {
		r.Use(authenticated(repo, config, log))

		r.Get("/types", ticketHandler.GetTicketTypes)
		r.Get("/", ticketHandler.GetTicket)
		r.Post("/", ticketHandler.CreateTicket)
	})
}
