// Package booking creates, moves and reads hotel room bookings.
package booking

import (
	"context"
	"errors"
	"fmt"
	"hotelBooking/internal/lib/apperr"
	"hotelBooking/internal/models"
	"hotelBooking/internal/storage"
	"log/slog"
)

var (
	ErrBookingNotFound = apperr.NotFound("booking not found")
	ErrAlreadyBooked   = apperr.Unauthorized("user already has a booking")
	ErrNotOwner        = apperr.Unauthorized("booking does not belong to user")
)

type EligibilityChecker interface {
	Check(ctx context.Context, userID int) error
}

type RoomRepository interface {
	RoomByID(ctx context.Context, roomID int) (models.Room, error)
}

type BookingRepository interface {
	BookingByUserID(ctx context.Context, userID int) (models.Booking, error)
	CountBookingsByRoomID(ctx context.Context, roomID int) (int, error)
	CreateBooking(ctx context.Context, userID, roomID int) (int, error)
	UpdateBookingRoom(ctx context.Context, bookingID, roomID int) error
}

// Store runs fn in one transaction; repository calls made with the context
// handed to fn take part in it.
type Store interface {
	RoomRepository
	BookingRepository
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	log         *slog.Logger
	eligibility EligibilityChecker
	store       Store
}

func New(log *slog.Logger, eligibility EligibilityChecker, store Store) *Service {
	return &Service{
		log:         log,
		eligibility: eligibility,
		store:       store,
	}
}

// Booking returns the user's booking with its room.
func (s *Service) Booking(ctx context.Context, userID int) (*models.Booking, error) {
	const op = "services.booking.Booking"

	booking, err := s.store.BookingByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &booking, nil
}

// CreateBooking books roomID for the user. Eligibility failures take
// precedence over capacity failures.
func (s *Service) CreateBooking(ctx context.Context, userID, roomID int) (int, error) {
	const op = "services.booking.CreateBooking"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("user_id", userID),
		slog.Int("room_id", roomID),
	)

	if err := s.eligibility.Check(ctx, userID); err != nil {
		return 0, err
	}

	var bookingID int

	err := s.store.WithTx(ctx, func(ctx context.Context) error {
		if err := s.checkAvailability(ctx, roomID, false); err != nil {
			return err
		}

		_, err := s.store.BookingByUserID(ctx, userID)
		switch {
		case err == nil:
			return ErrAlreadyBooked
		case !errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, err)
		}

		bookingID, err = s.store.CreateBooking(ctx, userID, roomID)
		if err != nil {
			if errors.Is(err, storage.ErrBookingExists) {
				return ErrAlreadyBooked
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("booking created", slog.Int("booking_id", bookingID))

	return bookingID, nil
}

// UpdateBooking moves the user's booking bookingID to roomID and returns
// the unchanged booking id.
func (s *Service) UpdateBooking(ctx context.Context, userID, roomID, bookingID int) (int, error) {
	const op = "services.booking.UpdateBooking"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("user_id", userID),
		slog.Int("room_id", roomID),
		slog.Int("booking_id", bookingID),
	)

	if err := s.eligibility.Check(ctx, userID); err != nil {
		return 0, err
	}

	err := s.store.WithTx(ctx, func(ctx context.Context) error {
		existing, findErr := s.store.BookingByUserID(ctx, userID)
		if findErr != nil && !errors.Is(findErr, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, findErr)
		}

		owned := findErr == nil && existing.ID == bookingID
		// A booking moved into the room it already occupies keeps its place,
		// so a full room still accepts it.
		stays := owned && existing.RoomID == roomID

		// Capacity is reported before ownership.
		if err := s.checkAvailability(ctx, roomID, stays); err != nil {
			return err
		}

		if !owned {
			return ErrNotOwner
		}

		if err := s.store.UpdateBookingRoom(ctx, bookingID, roomID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("booking moved")

	return bookingID, nil
}
