package wire

import (
	"event-booking/internal/adaptor"
	"event-booking/internal/data/repository"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEnrollment(
	r chi.Router,
	enrollmentHandler *adaptor.EnrollmentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/enrollments", func(r chi.Router) {
		r.Use(authenticated(repo, config, log))

		r.Get("/", enrollmentHandler.GetEnrollment)
		r.Post("/", enrollmentHandler.UpsertEnrollment)
	})
}
