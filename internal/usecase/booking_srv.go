package usecase

import (
	"context"
	"errors"
	"fmt"

	"event-booking/internal/data/repository"
	"event-booking/internal/dto/response"
	"event-booking/pkg/events"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	ListUserBooking(ctx context.Context, userID int) (*response.BookingResponse, error)
	InsertBooking(ctx context.Context, userID, roomID int) (*response.BookingCreatedResponse, error)
	ChangeBooking(ctx context.Context, userID, bookingID, roomID int) (*response.BookingChangedResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	rules     *BookingRules
	publisher events.Publisher
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, publisher events.Publisher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		rules:     NewBookingRules(repo.Enrollment, repo.Ticket),
		publisher: publisher,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) ListUserBooking(ctx context.Context, userID int) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user booking: %w", err)
	}
	if booking == nil {
		return nil, utils.NotFoundError("booking not found")
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// InsertBooking checks for an existing booking before ticket and room
// eligibility, so a user who already booked is always refused first.
func (s *bookingService) InsertBooking(ctx context.Context, userID, roomID int) (*response.BookingCreatedResponse, error) {
	existing, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	if existing != nil {
		return nil, utils.ForbiddenError(MsgAlreadyBooked)
	}

	if err := s.rules.ValidateTicket(ctx, userID); err != nil {
		s.log.Warn("Booking refused - ticket", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}

	booking, err := s.repo.Booking.Create(ctx, userID, roomID, ValidateRoom)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, utils.ForbiddenError(MsgAlreadyBooked)
	}
	if err != nil {
		s.log.Warn("Booking refused - room",
			zap.Int("user_id", userID),
			zap.Int("room_id", roomID),
			zap.Error(err),
		)
		return nil, err
	}

	s.log.Info("Booking created",
		zap.Int("booking_id", booking.ID),
		zap.Int("user_id", userID),
		zap.Int("room_id", roomID),
	)
	s.publish(ctx, events.BookingCreated, map[string]int{
		"bookingId": booking.ID,
		"userId":    userID,
		"roomId":    roomID,
	})

	return &response.BookingCreatedResponse{BookingID: booking.ID}, nil
}

// ChangeBooking moves the caller's booking to roomID. Ticket eligibility was
// settled when the booking was created and is not checked again.
func (s *bookingService) ChangeBooking(ctx context.Context, userID, bookingID, roomID int) (*response.BookingChangedResponse, error) {
	booking, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("change booking: %w", err)
	}
	if booking == nil {
		return nil, utils.ForbiddenError(MsgNoBookingYet)
	}
	if booking.ID != bookingID {
		return nil, utils.ForbiddenError(MsgBookingMismatch)
	}
	if booking.RoomID == roomID {
		return nil, utils.ForbiddenError(MsgSameRoom)
	}

	updated, err := s.repo.Booking.UpdateRoom(ctx, booking.ID, roomID, ValidateRoom)
	if err != nil {
		s.log.Warn("Booking change refused",
			zap.Int("booking_id", booking.ID),
			zap.Int("room_id", roomID),
			zap.Error(err),
		)
		return nil, err
	}

	s.log.Info("Booking changed",
		zap.Int("booking_id", updated.ID),
		zap.Int("from_room_id", booking.RoomID),
		zap.Int("to_room_id", updated.RoomID),
	)
	s.publish(ctx, events.BookingChanged, map[string]int{
		"bookingId":  updated.ID,
		"userId":     userID,
		"fromRoomId": booking.RoomID,
		"roomId":     updated.RoomID,
	})

	return &response.BookingChangedResponse{RoomID: updated.RoomID}, nil
}

func (s *bookingService) publish(ctx context.Context, routingKey string, data any) {
	if err := s.publisher.Publish(ctx, routingKey, data); err != nil {
		s.log.Error("Failed to publish event", zap.String("type", routingKey), zap.Error(err))
	}
}
