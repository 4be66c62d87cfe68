package usecase

import (
	"event-booking/internal/data/repository"
	"event-booking/pkg/cache"
	"event-booking/pkg/events"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	Enrollment EnrollmentService
	Ticket     TicketService
	Payment    PaymentService
	Hotel      HotelService
	Booking    BookingService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	c *cache.Cache,
	publisher events.Publisher,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(repo, config, log),
		Enrollment: NewEnrollmentService(repo.Enrollment, log),
		Ticket:     NewTicketService(repo, c, log),
		Payment:    NewPaymentService(repo, publisher, log),
		Hotel:      NewHotelService(repo, c, log),
		Booking:    NewBookingService(repo, publisher, log),
	}
}
