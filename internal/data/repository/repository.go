package repository

import (
	"errors"

	"event-booking/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	// ErrDuplicate is returned when an insert hits a unique constraint.
	ErrDuplicate = errors.New("duplicate record")

	// ErrTicketAlreadyPaid is returned when a payment targets a ticket that
	// is no longer RESERVED.
	ErrTicketAlreadyPaid = errors.New("ticket already paid")
)

type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Enrollment EnrollmentRepository
	Ticket     TicketRepository
	Hotel      HotelRepository
	Booking    BookingRepository
	Payment    PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Enrollment: NewEnrollmentRepository(db, log),
		Ticket:     NewTicketRepository(db, log),
		Hotel:      NewHotelRepository(db, log),
		Booking:    NewBookingRepository(db, log),
		Payment:    NewPaymentRepository(db, log),
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
