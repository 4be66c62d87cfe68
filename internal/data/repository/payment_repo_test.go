package repository

import (
	"context"
	"testing"
	"time"

	"event-booking/internal/data/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateAndMarkTicketPaid(t *testing.T) {
	now := time.Now()
	paymentCols := []string{"id", "created_at", "updated_at"}

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
		wantID  int
	}{
		{
			name: "commits status and payment together",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE tickets SET status`).
					WithArgs(3, entity.TicketStatusPaid, entity.TicketStatusReserved).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery(`INSERT INTO payments`).WithArgs(3, 600, "VISA", "1234").
					WillReturnRows(pgxmock.NewRows(paymentCols).AddRow(21, now, now))
				mock.ExpectCommit()
			},
			wantID: 21,
		},
		{
			name: "ticket no longer reserved skips the insert",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE tickets SET status`).
					WithArgs(3, entity.TicketStatusPaid, entity.TicketStatusReserved).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectRollback()
			},
			wantErr: ErrTicketAlreadyPaid,
		},
		{
			name: "existing payment row rolls back",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE tickets SET status`).
					WithArgs(3, entity.TicketStatusPaid, entity.TicketStatusReserved).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery(`INSERT INTO payments`).WithArgs(3, 600, "VISA", "1234").
					WillReturnError(&pgconn.PgError{Code: "23505"})
				mock.ExpectRollback()
			},
			wantErr: ErrTicketAlreadyPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()
			tt.setup(mock)

			payment := &entity.Payment{TicketID: 3, Value: 600, CardIssuer: "VISA", CardLastDigits: "1234"}
			err = NewPaymentRepository(mock, zap.NewNop()).CreateAndMarkTicketPaid(context.Background(), payment)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, payment.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
