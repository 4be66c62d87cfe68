package usecase

import (
	"context"
	"errors"
	"fmt"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"
	"event-booking/pkg/events"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentService interface {
	GetPaymentByTicketID(ctx context.Context, userID, ticketID int) (*response.PaymentResponse, error)
	ProcessPayment(ctx context.Context, userID int, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error)
}

type paymentService struct {
	repo      *repository.Repository
	publisher events.Publisher
	log       *zap.Logger
}

func NewPaymentService(repo *repository.Repository, publisher events.Publisher, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:      repo,
		publisher: publisher,
		log:       log.With(zap.String("service", "payment")),
	}
}

// GetPaymentByTicketID returns nil without error when the ticket exists
// but has not been paid yet.
func (s *paymentService) GetPaymentByTicketID(ctx context.Context, userID, ticketID int) (*response.PaymentResponse, error) {
	if _, err := s.ownedTicket(ctx, userID, ticketID); err != nil {
		return nil, err
	}

	payment, err := s.repo.Payment.FindByTicketID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if payment == nil {
		return nil, nil
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) ProcessPayment(ctx context.Context, userID int, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Process payment validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationError(errs)
	}

	ticket, err := s.ownedTicket(ctx, userID, req.TicketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == entity.TicketStatusPaid {
		return nil, utils.ConflictError("ticket already paid")
	}
	if ticket.TicketType == nil {
		return nil, fmt.Errorf("process payment: ticket %d has no type", ticket.ID)
	}

	number := req.CardData.Number
	payment := &entity.Payment{
		TicketID:       ticket.ID,
		Value:          ticket.TicketType.Price,
		CardIssuer:     req.CardData.Issuer,
		CardLastDigits: number[len(number)-4:],
	}
	err = s.repo.Payment.CreateAndMarkTicketPaid(ctx, payment)
	if errors.Is(err, repository.ErrTicketAlreadyPaid) {
		s.log.Warn("Payment refused - ticket already paid", zap.Int("ticket_id", ticket.ID))
		return nil, utils.ConflictError("ticket already paid")
	}
	if err != nil {
		return nil, fmt.Errorf("process payment: %w", err)
	}

	s.log.Info("Payment processed",
		zap.Int("payment_id", payment.ID),
		zap.Int("ticket_id", ticket.ID),
		zap.Int("value", payment.Value),
	)
	if err := s.publisher.Publish(ctx, events.PaymentProcessed, map[string]int{
		"paymentId": payment.ID,
		"ticketId":  ticket.ID,
		"userId":    userID,
		"value":     payment.Value,
	}); err != nil {
		s.log.Error("Failed to publish event", zap.String("type", events.PaymentProcessed), zap.Error(err))
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) ownedTicket(ctx context.Context, userID, ticketID int) (*entity.Ticket, error) {
	ticket, err := s.repo.Ticket.FindByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("find ticket %d: %w", ticketID, err)
	}
	if ticket == nil {
		return nil, utils.NotFoundError("ticket not found")
	}
	if ticket.Enrollment == nil || ticket.Enrollment.UserID != userID {
		s.log.Warn("Ticket access refused", zap.Int("ticket_id", ticketID), zap.Int("user_id", userID))
		return nil, utils.UnauthorizedError("ticket does not belong to user")
	}
	return ticket, nil
}
