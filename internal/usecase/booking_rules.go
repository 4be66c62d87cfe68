package usecase

import (
	"context"
	"fmt"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/pkg/utils"
)

const (
	MsgNoEligibleTicket = "user does not have a paid ticket valid for booking"
	MsgAlreadyBooked    = "user already has a booking"
	MsgNoBookingYet     = "user does not have a booking yet"
	MsgBookingMismatch  = "booking does not belong to user"
	MsgSameRoom         = "new room must differ from the current one"
	MsgRoomNotFound     = "room not found"
)

// BookingRules holds the eligibility checks that gate every booking write.
// They read current state on each call and keep nothing between calls.
type BookingRules struct {
	enrollments repository.EnrollmentRepository
	tickets     repository.TicketRepository
}

func NewBookingRules(enrollments repository.EnrollmentRepository, tickets repository.TicketRepository) *BookingRules {
	return &BookingRules{
		enrollments: enrollments,
		tickets:     tickets,
	}
}

// ValidateTicket passes only when the user's enrollment holds a paid,
// in-person ticket that includes accommodation.
func (b *BookingRules) ValidateTicket(ctx context.Context, userID int) error {
	enrollment, err := b.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("validate ticket of user %d: %w", userID, err)
	}
	if enrollment == nil {
		return utils.ForbiddenError(MsgNoEligibleTicket)
	}

	ticket, err := b.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return fmt.Errorf("validate ticket of user %d: %w", userID, err)
	}
	if !ticket.BookingEligible() {
		return utils.ForbiddenError(MsgNoEligibleTicket)
	}

	return nil
}

// ValidateRoom rejects a missing room and a room whose bookings already
// reach its capacity. It has the repository.RoomGuard signature so the
// booking repository can run it under the room's row lock.
func ValidateRoom(room *entity.Room, occupied int) error {
	if room == nil {
		return utils.NotFoundError(MsgRoomNotFound)
	}
	if occupied >= room.Capacity {
		return utils.ForbiddenError(fmt.Sprintf("room %d is full", room.ID))
	}
	return nil
}

var _ repository.RoomGuard = ValidateRoom
