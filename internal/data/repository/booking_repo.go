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

// RoomGuard decides whether a booking may be placed in room given the number
// of bookings it currently holds. room is nil when the room does not exist.
// It runs inside the transaction that holds the room's row lock.
type RoomGuard func(room *entity.Room, occupied int) error

type BookingRepository interface {
	FindByUserID(ctx context.Context, userID int) (*entity.Booking, error)

	// Capacity-guarded writes
	Create(ctx context.Context, userID, roomID int, guard RoomGuard) (*entity.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, roomID int, guard RoomGuard) (*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID int) (*entity.Booking, error) {
	query := `
		SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		       r.id, r.hotel_id, r.name, r.capacity, r.created_at, r.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
	`

	var booking entity.Booking
	var room entity.Room
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&room.ID,
		&room.HotelID,
		&room.Name,
		&room.Capacity,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by user ID",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, fmt.Errorf("find booking by user ID %d: %w", userID, err)
	}

	booking.Room = &room
	return &booking, nil
}

// Create inserts a booking for userID in roomID once guard accepts the locked
// room. Guard errors are returned untouched; a second booking for the same
// user yields ErrDuplicate.
func (r *bookingRepository) Create(ctx context.Context, userID, roomID int, guard RoomGuard) (*entity.Booking, error) {
	var booking entity.Booking

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		room, occupied, err := r.lockRoom(ctx, tx, roomID)
		if err != nil {
			return err
		}
		if err := guard(room, occupied); err != nil {
			return err
		}

		query := `
			INSERT INTO bookings (user_id, room_id, created_at, updated_at)
			VALUES ($1, $2, NOW(), NOW())
			RETURNING id, user_id, room_id, created_at, updated_at
		`
		err = tx.QueryRow(ctx, query, userID, roomID).Scan(
			&booking.ID,
			&booking.UserID,
			&booking.RoomID,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		if err != nil {
			r.log.Error("Failed to create booking",
				zap.Error(err),
				zap.Int("user_id", userID),
				zap.Int("room_id", roomID),
			)
			return fmt.Errorf("create booking for user %d: %w", userID, err)
		}

		booking.Room = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// UpdateRoom moves bookingID into roomID once guard accepts the locked room.
func (r *bookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID int, guard RoomGuard) (*entity.Booking, error) {
	var booking entity.Booking

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		room, occupied, err := r.lockRoom(ctx, tx, roomID)
		if err != nil {
			return err
		}
		if err := guard(room, occupied); err != nil {
			return err
		}

		query := `
			UPDATE bookings
			SET room_id = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING id, user_id, room_id, created_at, updated_at
		`
		err = tx.QueryRow(ctx, query, bookingID, roomID).Scan(
			&booking.ID,
			&booking.UserID,
			&booking.RoomID,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("booking %d not found", bookingID)
		}
		if err != nil {
			r.log.Error("Failed to update booking room",
				zap.Error(err),
				zap.Int("booking_id", bookingID),
				zap.Int("room_id", roomID),
			)
			return fmt.Errorf("update booking %d: %w", bookingID, err)
		}

		booking.Room = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// lockRoom takes a row lock on the room so concurrent bookings against it
// serialise, then counts the bookings it holds.
func (r *bookingRepository) lockRoom(ctx context.Context, tx pgx.Tx, roomID int) (*entity.Room, int, error) {
	query := `
		SELECT id, hotel_id, name, capacity, created_at, updated_at
		FROM rooms
		WHERE id = $1
		FOR UPDATE
	`

	var room entity.Room
	err := tx.QueryRow(ctx, query, roomID).Scan(
		&room.ID,
		&room.HotelID,
		&room.Name,
		&room.Capacity,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, 0, nil
	}
	if err != nil {
		r.log.Error("Failed to lock room", zap.Error(err), zap.Int("room_id", roomID))
		return nil, 0, fmt.Errorf("lock room %d: %w", roomID, err)
	}

	var occupied int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE room_id = $1`, roomID).Scan(&occupied); err != nil {
		r.log.Error("Failed to count room bookings", zap.Error(err), zap.Int("room_id", roomID))
		return nil, 0, fmt.Errorf("count bookings of room %d: %w", roomID, err)
	}

	return &room, occupied, nil
}
