package sqlstore

import (
	"context"
	"fmt"
	"hotelBooking/internal/models"
)

func (s *Store) Hotels(ctx context.Context) ([]models.Hotel, error) {
	const op = "storage.sqlstore.Hotels"

	query := `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		ORDER BY id`

	hotels := []models.Hotel{}
	if err := s.selectAll(ctx, &hotels, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return hotels, nil
}

func (s *Store) HotelByID(ctx context.Context, hotelID int) (models.Hotel, error) {
	const op = "storage.sqlstore.HotelByID"

	query := `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		WHERE id = ?`

	var hotel models.Hotel
	if err := s.get(ctx, &hotel, query, hotelID); err != nil {
		return models.Hotel{}, fmt.Errorf("%s: %w", op, err)
	}

	return hotel, nil
}
