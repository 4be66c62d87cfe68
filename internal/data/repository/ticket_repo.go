package repository

import (
	"context"
	"errors"
	"fmt"

	"event-booking/internal/data/entity"
	"event-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	// Ticket types
	FindTypes(ctx context.Context) ([]*entity.TicketType, error)
	FindTypeByID(ctx context.Context, id int) (*entity.TicketType, error)

	// Tickets
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindByID(ctx context.Context, id int) (*entity.Ticket, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID int) (*entity.Ticket, error)
	FindByUserID(ctx context.Context, userID int) (*entity.Ticket, error)
	FindPaidHotelTicketByUserID(ctx context.Context, userID int) (*entity.Ticket, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

const ticketWithTypeColumns = `
	t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
	tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
`

func scanTicketWithType(row scanner) (*entity.Ticket, error) {
	var ticket entity.Ticket
	var ticketType entity.TicketType
	err := row.Scan(
		&ticket.ID,
		&ticket.EnrollmentID,
		&ticket.TicketTypeID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticketType.ID,
		&ticketType.Name,
		&ticketType.Price,
		&ticketType.IsRemote,
		&ticketType.IncludesHotel,
		&ticketType.CreatedAt,
		&ticketType.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	ticket.TicketType = &ticketType
	return &ticket, nil
}

func (r *ticketRepository) FindTypes(ctx context.Context) ([]*entity.TicketType, error) {
	query := `
		SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		FROM ticket_types
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find ticket types", zap.Error(err))
		return nil, fmt.Errorf("find ticket types: %w", err)
	}
	defer rows.Close()

	ticketTypes := []*entity.TicketType{}
	for rows.Next() {
		var ticketType entity.TicketType
		err := rows.Scan(
			&ticketType.ID,
			&ticketType.Name,
			&ticketType.Price,
			&ticketType.IsRemote,
			&ticketType.IncludesHotel,
			&ticketType.CreatedAt,
			&ticketType.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket type row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket type row: %w", err)
		}
		ticketTypes = append(ticketTypes, &ticketType)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate ticket type rows: %w", err)
	}

	return ticketTypes, nil
}

func (r *ticketRepository) FindTypeByID(ctx context.Context, id int) (*entity.TicketType, error) {
	query := `
		SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		FROM ticket_types
		WHERE id = $1
	`

	var ticketType entity.TicketType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ticketType.ID,
		&ticketType.Name,
		&ticketType.Price,
		&ticketType.IsRemote,
		&ticketType.IncludesHotel,
		&ticketType.CreatedAt,
		&ticketType.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket type by ID", zap.Error(err), zap.Int("ticket_type_id", id))
		return nil, fmt.Errorf("find ticket type by ID %d: %w", id, err)
	}

	return &ticketType, nil
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (enrollment_id, ticket_type_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		ticket.EnrollmentID,
		ticket.TicketTypeID,
		ticket.Status,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.Int("enrollment_id", ticket.EnrollmentID),
			zap.Int("ticket_type_id", ticket.TicketTypeID),
		)
		return fmt.Errorf("create ticket for enrollment %d: %w", ticket.EnrollmentID, err)
	}

	return nil
}

// FindByID returns the ticket with its enrollment, used for ownership checks.
func (r *ticketRepository) FindByID(ctx context.Context, id int) (*entity.Ticket, error) {
	query := `SELECT ` + ticketWithTypeColumns + `,
		       e.id, e.user_id, e.name, e.cpf, e.birthday, e.phone, e.created_at, e.updated_at
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		JOIN enrollments e ON e.id = t.enrollment_id
		WHERE t.id = $1
	`

	var ticket entity.Ticket
	var ticketType entity.TicketType
	var enrollment entity.Enrollment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.EnrollmentID,
		&ticket.TicketTypeID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticketType.ID,
		&ticketType.Name,
		&ticketType.Price,
		&ticketType.IsRemote,
		&ticketType.IncludesHotel,
		&ticketType.CreatedAt,
		&ticketType.UpdatedAt,
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.Name,
		&enrollment.CPF,
		&enrollment.Birthday,
		&enrollment.Phone,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID", zap.Error(err), zap.Int("ticket_id", id))
		return nil, fmt.Errorf("find ticket by ID %d: %w", id, err)
	}

	ticket.TicketType = &ticketType
	ticket.Enrollment = &enrollment
	return &ticket, nil
}

func (r *ticketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int) (*entity.Ticket, error) {
	query := `SELECT ` + ticketWithTypeColumns + `
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id = $1
		ORDER BY t.id
		LIMIT 1
	`

	ticket, err := scanTicketWithType(r.db.QueryRow(ctx, query, enrollmentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by enrollment ID", zap.Error(err), zap.Int("enrollment_id", enrollmentID))
		return nil, fmt.Errorf("find ticket by enrollment ID %d: %w", enrollmentID, err)
	}

	return ticket, nil
}

// FindByUserID returns the first ticket of the user's enrollment.
func (r *ticketRepository) FindByUserID(ctx context.Context, userID int) (*entity.Ticket, error) {
	query := `SELECT ` + ticketWithTypeColumns + `
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		JOIN enrollments e ON e.id = t.enrollment_id
		WHERE e.user_id = $1
		ORDER BY t.id
		LIMIT 1
	`

	ticket, err := scanTicketWithType(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by user ID", zap.Error(err), zap.Int("user_id", userID))
		return nil, fmt.Errorf("find ticket by user ID %d: %w", userID, err)
	}

	return ticket, nil
}

func (r *ticketRepository) FindPaidHotelTicketByUserID(ctx context.Context, userID int) (*entity.Ticket, error) {
	query := `SELECT ` + ticketWithTypeColumns + `
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		JOIN enrollments e ON e.id = t.enrollment_id
		WHERE e.user_id = $1
		  AND t.status = 'PAID'
		  AND tt.includes_hotel = TRUE
		ORDER BY t.id
		LIMIT 1
	`

	ticket, err := scanTicketWithType(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find paid hotel ticket", zap.Error(err), zap.Int("user_id", userID))
		return nil, fmt.Errorf("find paid hotel ticket of user %d: %w", userID, err)
	}

	return ticket, nil
}
