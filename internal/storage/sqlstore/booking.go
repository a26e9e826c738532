package sqlstore

import (
	"context"
	"fmt"
	"hotelBooking/internal/models"
	"hotelBooking/internal/storage"
	"time"
)

type bookingRow struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	RoomID        int       `db:"room_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	RoomName      string    `db:"room_name"`
	RoomCapacity  int       `db:"room_capacity"`
	RoomHotelID   int       `db:"room_hotel_id"`
	RoomCreatedAt time.Time `db:"room_created_at"`
	RoomUpdatedAt time.Time `db:"room_updated_at"`
}

func (r bookingRow) toModel() models.Booking {
	return models.Booking{
		ID:        r.ID,
		UserID:    r.UserID,
		RoomID:    r.RoomID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Room: &models.Room{
			ID:        r.RoomID,
			Name:      r.RoomName,
			Capacity:  r.RoomCapacity,
			HotelID:   r.RoomHotelID,
			CreatedAt: r.RoomCreatedAt,
			UpdatedAt: r.RoomUpdatedAt,
		},
	}
}

// BookingByUserID returns the user's booking joined with its room.
func (s *Store) BookingByUserID(ctx context.Context, userID int) (models.Booking, error) {
	const op = "storage.sqlstore.BookingByUserID"

	query := `
		SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		       r.name AS room_name, r.capacity AS room_capacity, r.hotel_id AS room_hotel_id,
		       r.created_at AS room_created_at, r.updated_at AS room_updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = ?
		ORDER BY b.id
		LIMIT 1`

	var row bookingRow
	if err := s.get(ctx, &row, query, userID); err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return row.toModel(), nil
}

func (s *Store) CountBookingsByRoomID(ctx context.Context, roomID int) (int, error) {
	const op = "storage.sqlstore.CountBookingsByRoomID"

	var count int
	if err := s.get(ctx, &count, `SELECT COUNT(*) FROM bookings WHERE room_id = ?`, roomID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// CreateBooking inserts a booking and returns its id. It fails with
// storage.ErrBookingExists when the user already holds one.
func (s *Store) CreateBooking(ctx context.Context, userID, roomID int) (int, error) {
	const op = "storage.sqlstore.CreateBooking"

	query := `
		INSERT INTO bookings (user_id, room_id, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		RETURNING id`

	now := s.now()

	var id int
	if err := s.get(ctx, &id, query, userID, roomID, now, now); err != nil {
		if s.dialect.IsUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrBookingExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// UpdateBookingRoom moves the booking to another room in place.
func (s *Store) UpdateBookingRoom(ctx context.Context, bookingID, roomID int) error {
	const op = "storage.sqlstore.UpdateBookingRoom"

	query := `
		UPDATE bookings
		SET room_id = ?, updated_at = ?
		WHERE id = ?`

	res, err := s.exec(ctx, query, roomID, s.now(), bookingID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
