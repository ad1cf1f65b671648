// Package auth covers registration, login and bearer-token validation.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"github.com/yradunchev/podsub/internal/apperr"
	"github.com/yradunchev/podsub/internal/models"
	"github.com/yradunchev/podsub/internal/store"
)

// tokenTTL is how long an issued token stays valid.
const tokenTTL = 6 * time.Hour

type Service struct {
	store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// Register creates a user with an empty subscription list and returns a
// fresh token. The email uniqueness check is look-then-insert without a
// transaction, so two concurrent registrations of the same email can race;
// the unique index on email makes the loser fail at insert time.
func (s *Service) Register(ctx context.Context, email, password string) (*models.AuthToken, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("missing required field email or password")
	}

	existing, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Validation("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Email:    email,
		PassHash: string(hash),
		Podcasts: []string{},
	}
	if err := s.store.PutUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(ctx, user.ID)
}

// Login verifies the credentials and returns a fresh token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*models.AuthToken, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.PermissionDenied("permission denied")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(password)); err != nil {
		return nil, apperr.PermissionDenied("permission denied")
	}
	return s.issueToken(ctx, user.ID)
}

// ValidateToken resolves a token to its user. Unknown and expired tokens
// both fail with an authentication error.
func (s *Service) ValidateToken(ctx context.Context, token string) (*models.User, error) {
	t, err := s.store.GetAuthToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if t == nil || t.Expired() {
		return nil, apperr.Authentication("authentication failure")
	}
	return s.store.GetUserByID(ctx, t.UserID)
}

func (s *Service) issueToken(ctx context.Context, userID string) (*models.AuthToken, error) {
	token := &models.AuthToken{
		Token:   strings.ReplaceAll(uuid.NewString(), "-", ""),
		Expires: time.Now().Add(tokenTTL),
		UserID:  userID,
	}
	if err := s.store.InsertAuthToken(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}
