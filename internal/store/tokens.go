package store

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/yradunchev/podsub/internal/models"
)

func (s *Store) InsertAuthToken(ctx context.Context, token *models.AuthToken) error {
	query := `
		INSERT INTO auth_tokens (token, expires, user_id)
		VALUES ($1, $2, $3)
	`
	_, err := s.db.ExecContext(ctx, query, token.Token, token.Expires, token.UserID)
	if err != nil {
		log.Printf("Error inserting auth token for user %s: %v", token.UserID, err)
		return err
	}
	return nil
}

// GetAuthToken returns (nil, nil) for an unknown token; expiry is checked
// by the caller.
func (s *Store) GetAuthToken(ctx context.Context, token string) (*models.AuthToken, error) {
	t := &models.AuthToken{}
	err := s.db.GetContext(ctx, t, "SELECT token, expires, user_id FROM auth_tokens WHERE token = $1", token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Printf("Error getting auth token: %v", err)
		return nil, err
	}
	return t, nil
}
