// Package eligibility decides whether a user may hold a hotel room.
package eligibility

import (
	"context"
	"errors"
	"fmt"
	"hotelBooking/internal/lib/apperr"
	"hotelBooking/internal/models"
	"hotelBooking/internal/storage"
)

var (
	ErrEnrollmentNotFound = apperr.NotFound("enrollment not found")
	ErrTicketNotFound     = apperr.Unauthorized("ticket not found")
	ErrTicketNotPaid      = apperr.Unauthorized("ticket is not paid")
	ErrTicketRemote       = apperr.Unauthorized("ticket is remote")
	ErrTicketWithoutHotel = apperr.Unauthorized("ticket does not include hotel")
)

type EnrollmentRepository interface {
	EnrollmentByUserID(ctx context.Context, userID int) (models.Enrollment, error)
}

type TicketRepository interface {
	TicketByEnrollmentID(ctx context.Context, enrollmentID int) (models.Ticket, error)
}

type Checker struct {
	enrollments EnrollmentRepository
	tickets     TicketRepository
}

func New(enrollments EnrollmentRepository, tickets TicketRepository) *Checker {
	return &Checker{
		enrollments: enrollments,
		tickets:     tickets,
	}
}

// Check returns nil when the user's ticket is paid, in person and includes
// hotel. An enrollment without an address counts as missing.
func (c *Checker) Check(ctx context.Context, userID int) error {
	const op = "services.eligibility.Check"

	enrollment, err := c.enrollments.EnrollmentByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrEnrollmentNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if enrollment.Address == nil {
		return ErrEnrollmentNotFound
	}

	ticket, err := c.tickets.TicketByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTicketNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	switch {
	case ticket.Status != models.TicketStatusPaid:
		return ErrTicketNotPaid
	case ticket.TicketType.IsRemote:
		return ErrTicketRemote
	case !ticket.TicketType.IncludesHotel:
		return ErrTicketWithoutHotel
	}

	return nil
}
