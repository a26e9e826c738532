package sqlstore

import (
	"context"
	"fmt"
	"hotelBooking/internal/models"
)

// RoomByID returns the room. Inside a transaction the row stays locked
// until the transaction ends.
func (s *Store) RoomByID(ctx context.Context, roomID int) (models.Room, error) {
	const op = "storage.sqlstore.RoomByID"

	query := `
		SELECT id, name, capacity, hotel_id, created_at, updated_at
		FROM rooms
		WHERE id = ?`

	if s.inTx(ctx) {
		query += s.dialect.LockClause
	}

	var room models.Room
	if err := s.get(ctx, &room, query, roomID); err != nil {
		return models.Room{}, fmt.Errorf("%s: %w", op, err)
	}

	return room, nil
}

func (s *Store) RoomsByHotelID(ctx context.Context, hotelID int) ([]models.Room, error) {
	const op = "storage.sqlstore.RoomsByHotelID"

	query := `
		SELECT r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at,
		       COUNT(b.id) AS booked_count
		FROM rooms r
		LEFT JOIN bookings b ON b.room_id = r.id
		WHERE r.hotel_id = ?
		GROUP BY r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
		ORDER BY r.id`

	rooms := []models.Room{}
	if err := s.selectAll(ctx, &rooms, query, hotelID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rooms, nil
}
