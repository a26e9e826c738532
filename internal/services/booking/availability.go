package booking

import (
	"context"
	"errors"
	"fmt"
	"hotelBooking/internal/lib/apperr"
	"hotelBooking/internal/storage"
)

var (
	ErrRoomNotFound = apperr.NotFound("room not found")
	ErrRoomFull     = apperr.Unauthorized("room is at full capacity")
)

// CheckAvailability fails with ErrRoomNotFound for an unknown room and with
// ErrRoomFull once the room holds as many bookings as its capacity.
func (s *Service) CheckAvailability(ctx context.Context, roomID int) error {
	return s.checkAvailability(ctx, roomID, false)
}

// checkAvailability with selfIncluded set discounts one booking: the
// caller's own, which already references the room.
func (s *Service) checkAvailability(ctx context.Context, roomID int, selfIncluded bool) error {
	const op = "services.booking.checkAvailability"

	room, err := s.store.RoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	count, err := s.store.CountBookingsByRoomID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if selfIncluded {
		count--
	}

	if count >= room.Capacity {
		return ErrRoomFull
	}

	return nil
}
