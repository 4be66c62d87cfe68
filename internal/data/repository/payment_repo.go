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

type PaymentRepository interface {
	FindByTicketID(ctx context.Context, ticketID int) (*entity.Payment, error)

	// Business queries
	CreateAndMarkTicketPaid(ctx context.Context, payment *entity.Payment) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) FindByTicketID(ctx context.Context, ticketID int) (*entity.Payment, error) {
	query := `
		SELECT id, ticket_id, value, card_issuer, card_last_digits, created_at, updated_at
		FROM payments
		WHERE ticket_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, ticketID).Scan(
		&payment.ID,
		&payment.TicketID,
		&payment.Value,
		&payment.CardIssuer,
		&payment.CardLastDigits,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ticket ID",
			zap.Error(err),
			zap.Int("ticket_id", ticketID),
		)
		return nil, fmt.Errorf("find payment by ticket ID %d: %w", ticketID, err)
	}

	return &payment, nil
}

// CreateAndMarkTicketPaid flips a RESERVED ticket to PAID and stores its
// payment in one transaction. The status guard on the update serialises
// concurrent payments for the same ticket; the loser gets ErrTicketAlreadyPaid.
func (r *paymentRepository) CreateAndMarkTicketPaid(ctx context.Context, payment *entity.Payment) error {
	return database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx,
			`UPDATE tickets SET status = $2, updated_at = NOW() WHERE id = $1 AND status = $3`,
			payment.TicketID, entity.TicketStatusPaid, entity.TicketStatusReserved,
		)
		if err != nil {
			r.log.Error("Failed to mark ticket paid",
				zap.Error(err),
				zap.Int("ticket_id", payment.TicketID),
			)
			return fmt.Errorf("mark ticket %d paid: %w", payment.TicketID, err)
		}
		if result.RowsAffected() == 0 {
			return ErrTicketAlreadyPaid
		}

		query := `
			INSERT INTO payments (ticket_id, value, card_issuer, card_last_digits, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			RETURNING id, created_at, updated_at
		`
		err = tx.QueryRow(ctx, query,
			payment.TicketID,
			payment.Value,
			payment.CardIssuer,
			payment.CardLastDigits,
		).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
		if isUniqueViolation(err) {
			return ErrTicketAlreadyPaid
		}
		if err != nil {
			r.log.Error("Failed to create payment",
				zap.Error(err),
				zap.Int("ticket_id", payment.TicketID),
			)
			return fmt.Errorf("create payment for ticket %d: %w", payment.TicketID, err)
		}

		return nil
	})
}
