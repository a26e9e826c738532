// Package hotel lists hotels and their rooms to attendees allowed to book them.
package hotel

import (
	"context"
	"errors"
	"fmt"
	"hotelBooking/internal/lib/apperr"
	"hotelBooking/internal/models"
	"hotelBooking/internal/storage"
)

var ErrHotelNotFound = apperr.NotFound("hotel not found")

type EligibilityChecker interface {
	Check(ctx context.Context, userID int) error
}

type Repository interface {
	Hotels(ctx context.Context) ([]models.Hotel, error)
	HotelByID(ctx context.Context, hotelID int) (models.Hotel, error)
	RoomsByHotelID(ctx context.Context, hotelID int) ([]models.Room, error)
}

type Service struct {
	eligibility EligibilityChecker
	repo        Repository
}

func New(eligibility EligibilityChecker, repo Repository) *Service {
	return &Service{
		eligibility: eligibility,
		repo:        repo,
	}
}

func (s *Service) Hotels(ctx context.Context, userID int) ([]models.Hotel, error) {
	const op = "services.hotel.Hotels"

	if err := s.eligibility.Check(ctx, userID); err != nil {
		return nil, err
	}

	hotels, err := s.repo.Hotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return hotels, nil
}

// HotelWithRooms returns the hotel with every room and its current booking count.
func (s *Service) HotelWithRooms(ctx context.Context, userID, hotelID int) (*models.Hotel, error) {
	const op = "services.hotel.HotelWithRooms"

	if err := s.eligibility.Check(ctx, userID); err != nil {
		return nil, err
	}

	hotel, err := s.repo.HotelByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hotel.Rooms, err = s.repo.RoomsByHotelID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &hotel, nil
}
