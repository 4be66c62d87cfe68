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

type EnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID int) (*entity.Enrollment, error)
	Upsert(ctx context.Context, enrollment *entity.Enrollment) error
}

type enrollmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEnrollmentRepository(db database.PgxIface, log *zap.Logger) EnrollmentRepository {
	return &enrollmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "enrollment")),
	}
}

func (r *enrollmentRepository) FindByUserID(ctx context.Context, userID int) (*entity.Enrollment, error) {
	query := `
		SELECT id, user_id, name, cpf, birthday, phone, created_at, updated_at
		FROM enrollments
		WHERE user_id = $1
	`

	var enrollment entity.Enrollment
	err := r.db.QueryRow(ctx, query, userID).Scan(
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
		r.log.Error("Failed to find enrollment by user ID",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, fmt.Errorf("find enrollment by user ID %d: %w", userID, err)
	}

	return &enrollment, nil
}

// Upsert creates the user's enrollment or overwrites its profile fields.
func (r *enrollmentRepository) Upsert(ctx context.Context, enrollment *entity.Enrollment) error {
	query := `
		INSERT INTO enrollments (user_id, name, cpf, birthday, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name, cpf = EXCLUDED.cpf, birthday = EXCLUDED.birthday,
		    phone = EXCLUDED.phone, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.UserID,
		enrollment.Name,
		enrollment.CPF,
		enrollment.Birthday,
		enrollment.Phone,
	).Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		r.log.Error("Failed to upsert enrollment",
			zap.Error(err),
			zap.Int("user_id", enrollment.UserID),
		)
		return fmt.Errorf("upsert enrollment of user %d: %w", enrollment.UserID, err)
	}

	return nil
}
