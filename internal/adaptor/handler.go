package adaptor

import (
	"event-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	Enrollment *EnrollmentHandler
	Ticket     *TicketHandler
	Payment    *PaymentHandler
	Hotel      *HotelHandler
	Booking    *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		Enrollment: NewEnrollmentHandler(service.Enrollment, log),
		Ticket:     NewTicketHandler(service.Ticket, log),
		Payment:    NewPaymentHandler(service.Payment, log),
		Hotel:      NewHotelHandler(service.Hotel, log),
		Booking:    NewBookingHandler(service.Booking, log),
	}
}
