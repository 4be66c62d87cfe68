package entity

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type TicketType struct {
	Base
	Name          string `db:"name"`
	Price         int    `db:"price"`
	IsRemote      bool   `db:"is_remote"`
	IncludesHotel bool   `db:"includes_hotel"`
}

type Ticket struct {
	Base
	EnrollmentID int          `db:"enrollment_id"`
	TicketTypeID int          `db:"ticket_type_id"`
	Status       TicketStatus `db:"status"`

	// Populated by queries that join ticket_types / enrollments.
	TicketType *TicketType `db:"-"`
	Enrollment *Enrollment `db:"-"`
}

// BookingEligible reports whether the ticket unlocks a hotel booking:
// paid, in person and with accommodation.
func (t *Ticket) BookingEligible() bool {
	if t == nil || t.TicketType == nil {
		return false
	}
	return t.Status == TicketStatusPaid && !t.TicketType.IsRemote && t.TicketType.IncludesHotel
}
