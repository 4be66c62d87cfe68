// internal/wire/wire.go
package wire

import (
	"net/http"

	"event-booking/internal/adaptor"
	"event-booking/internal/data/repository"
	"event-booking/internal/usecase"
	"event-booking/pkg/cache"
	"event-booking/pkg/events"
	"event-booking/pkg/middleware"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router. c may be nil and
// publisher may be events.NopPublisher when redis or rabbitmq are off.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	c *cache.Cache,
	publisher events.Publisher,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, c, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Apply routes
	wireAuth(r, handler.Auth)
	wireEnrollment(r, handler.Enrollment, repo, config, logger)
	wireTicket(r, handler.Ticket, repo, config, logger)
	wirePayment(r, handler.Payment, repo, config, logger)
	wireHotel(r, handler.Hotel, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

func authenticated(repo *repository.Repository, config *utils.Config, log *zap.Logger) func(http.Handler) http.Handler {
	return middleware.Auth(config.JWT.Secret, repo.Session, log)
}
