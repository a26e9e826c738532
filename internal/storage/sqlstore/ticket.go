package sqlstore

import (
	"context"
	"fmt"
	"hotelBooking/internal/models"
	"time"
)

type ticketRow struct {
	ID            int                 `db:"id"`
	EnrollmentID  int                 `db:"enrollment_id"`
	TicketTypeID  int                 `db:"ticket_type_id"`
	Status        models.TicketStatus `db:"status"`
	CreatedAt     time.Time           `db:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at"`
	TypeName      string              `db:"type_name"`
	TypePrice     int                 `db:"type_price"`
	IsRemote      bool                `db:"is_remote"`
	IncludesHotel bool                `db:"includes_hotel"`
}

func (r ticketRow) toModel() models.Ticket {
	return models.Ticket{
		ID:           r.ID,
		EnrollmentID: r.EnrollmentID,
		TicketTypeID: r.TicketTypeID,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		TicketType: models.TicketType{
			ID:            r.TicketTypeID,
			Name:          r.TypeName,
			Price:         r.TypePrice,
			IsRemote:      r.IsRemote,
			IncludesHotel: r.IncludesHotel,
		},
	}
}

// TicketByEnrollmentID returns the enrollment's ticket joined with its type.
func (s *Store) TicketByEnrollmentID(ctx context.Context, enrollmentID int) (models.Ticket, error) {
	const op = "storage.sqlstore.TicketByEnrollmentID"

	query := `
		SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
		       tt.name AS type_name, tt.price AS type_price, tt.is_remote, tt.includes_hotel
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id = ?
		ORDER BY t.id
		LIMIT 1`

	var row ticketRow
	if err := s.get(ctx, &row, query, enrollmentID); err != nil {
		return models.Ticket{}, fmt.Errorf("%s: %w", op, err)
	}

	return row.toModel(), nil
}
