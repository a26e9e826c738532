package sqlstore

import (
	"context"
	"fmt"
)

// UserIDByToken resolves a session token to the id of the user who owns it.
func (s *Store) UserIDByToken(ctx context.Context, token string) (int, error) {
	const op = "storage.sqlstore.UserIDByToken"

	var userID int
	if err := s.get(ctx, &userID, `SELECT user_id FROM sessions WHERE token = ?`, token); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return userID, nil
}
