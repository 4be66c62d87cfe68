package wire

import (
	"event-booking/internal/adaptor"
	"event-booking/internal/data/repository"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/payments", func(r chi.Router) {
		r.Use(authenticated(repo, config, log))

		// GET /payments?ticketId= - payment of one of the caller's tickets
		r.Get("/", paymentHandler.GetPayment)

		// POST /payments/process - pay a reserved ticket
		r.Post("/process", paymentHandler.ProcessPayment)
	})
}
