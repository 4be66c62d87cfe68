package usecase

import (
	"context"
	"fmt"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"
	"event-booking/pkg/cache"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

const ticketTypesCacheKey = "ticket-types:all"

type TicketService interface {
	GetTicketTypes(ctx context.Context) ([]response.TicketTypeResponse, error)
	GetUserTicket(ctx context.Context, userID int) (*response.TicketResponse, error)
	CreateTicket(ctx context.Context, userID int, req *request.CreateTicketRequest) (*response.TicketResponse, error)
}

type ticketService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewTicketService(repo *repository.Repository, c *cache.Cache, log *zap.Logger) TicketService {
	return &ticketService{
		repo:  repo,
		cache: c,
		log:   log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) GetTicketTypes(ctx context.Context) ([]response.TicketTypeResponse, error) {
	return cache.Remember(ctx, s.cache, ticketTypesCacheKey, func(ctx context.Context) ([]response.TicketTypeResponse, error) {
		types, err := s.repo.Ticket.FindTypes(ctx)
		if err != nil {
			return nil, fmt.Errorf("get ticket types: %w", err)
		}

		resp := make([]response.TicketTypeResponse, 0, len(types))
		for _, t := range types {
			resp = append(resp, response.TicketTypeToResponse(t))
		}
		return resp, nil
	})
}

func (s *ticketService) GetUserTicket(ctx context.Context, userID int) (*response.TicketResponse, error) {
	ticket, err := s.repo.Ticket.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user ticket: %w", err)
	}
	if ticket == nil {
		return nil, utils.NotFoundError("ticket not found")
	}

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *ticketService) CreateTicket(ctx context.Context, userID int, req *request.CreateTicketRequest) (*response.TicketResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create ticket validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationError(errs)
	}

	// 2. Tickets hang off the enrollment
	enrollment, err := s.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	if enrollment == nil {
		return nil, utils.NotFoundError("enrollment not found")
	}

	// 3. Ticket type
	ticketType, err := s.repo.Ticket.FindTypeByID(ctx, req.TicketTypeID)
	if err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	if ticketType == nil {
		return nil, utils.NotFoundError("ticket type not found")
	}

	// 4. Save as RESERVED, payment flips it later
	ticket := &entity.Ticket{
		EnrollmentID: enrollment.ID,
		TicketTypeID: ticketType.ID,
		Status:       entity.TicketStatusReserved,
	}
	if err := s.repo.Ticket.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	ticket.TicketType = ticketType

	s.log.Info("Ticket reserved",
		zap.Int("ticket_id", ticket.ID),
		zap.Int("user_id", userID),
		zap.Int("ticket_type_id", ticketType.ID),
	)

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}
