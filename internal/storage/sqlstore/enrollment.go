package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"hotelBooking/internal/models"
	"hotelBooking/internal/storage"
)

// EnrollmentByUserID returns the user's enrollment. Address stays nil when
// the enrollment has none.
func (s *Store) EnrollmentByUserID(ctx context.Context, userID int) (models.Enrollment, error) {
	const op = "storage.sqlstore.EnrollmentByUserID"

	query := `
		SELECT id, user_id, name, cpf, birthday, phone, created_at, updated_at
		FROM enrollments
		WHERE user_id = ?
		ORDER BY id
		LIMIT 1`

	var enrollment models.Enrollment
	if err := s.get(ctx, &enrollment, query, userID); err != nil {
		return models.Enrollment{}, fmt.Errorf("%s: %w", op, err)
	}

	addressQuery := `
		SELECT id, enrollment_id, cep, street, city, state, number, neighborhood, address_detail
		FROM addresses
		WHERE enrollment_id = ?
		ORDER BY id
		LIMIT 1`

	var address models.Address
	err := s.get(ctx, &address, addressQuery, enrollment.ID)
	switch {
	case err == nil:
		enrollment.Address = &address
	case errors.Is(err, storage.ErrNotFound):
	default:
		return models.Enrollment{}, fmt.Errorf("%s: failed to get address: %w", op, err)
	}

	return enrollment, nil
}
