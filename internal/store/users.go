package store

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/yradunchev/podsub/internal/models"
)

// GetUserByEmail looks a user up by email. A missing user is not an error;
// it returns (nil, nil) so registration can use it as an existence check.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := s.db.GetContext(ctx, user, "SELECT id, email, pass_hash, podcasts FROM users WHERE email = $1", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Printf("Error getting user by email: %v", err)
		return nil, err
	}
	return user, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	err := s.db.GetContext(ctx, user, "SELECT id, email, pass_hash, podcasts FROM users WHERE id = $1", id)
	if err != nil {
		log.Printf("Error getting user %s: %v", id, err)
		return nil, err
	}
	return user, nil
}

// PutUser writes the whole user record, inserting or overwriting by id.
// Subscribe and unsubscribe use this as the second half of a
// read-modify-write: two concurrent writers for the same user both read the
// same prior list and the second put silently discards the first's change.
// The store offers no compare-and-swap, so this lost-update window is part
// of the contract.
func (s *Store) PutUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, pass_hash, podcasts)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			pass_hash = EXCLUDED.pass_hash,
			podcasts = EXCLUDED.podcasts
	`
	_, err := s.db.ExecContext(ctx, query, user.ID, user.Email, user.PassHash, user.Podcasts)
	if err != nil {
		log.Printf("Error putting user %s: %v", user.ID, err)
		return err
	}
	return nil
}
