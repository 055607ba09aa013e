package service

import (
	"context"

	"github.com/filehaven/filehaven/internal/domain"
)

// AuthService handles registration and the session lifecycle
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionStore
}

// NewAuthService creates a new auth service
func NewAuthService(users domain.UserRepository, sessions domain.SessionStore) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Register creates a new user with the given credentials.
// Missing fields and duplicate emails are rejected.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" {
		return nil, domain.NewValidationError("Missing email")
	}
	if password == "" {
		return nil, domain.NewValidationError("Missing password")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrAlreadyExists
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: HashPassword(password),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Connect verifies the credentials and issues a fresh session token.
// Each call issues an independent token; earlier ones stay valid.
func (s *AuthService) Connect(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrNotFound {
			return "", domain.ErrUnauthorized
		}
		return "", err
	}

	if !PasswordMatches(password, user.PasswordHash) {
		return "", domain.ErrUnauthorized
	}

	return s.sessions.Issue(ctx, user.ID)
}

// Disconnect revokes the session behind token. An unknown or expired
// token is rejected rather than silently ignored.
func (s *AuthService) Disconnect(ctx context.Context, token string) error {
	if _, err := s.sessions.Resolve(ctx, token); err != nil {
		return err
	}
	return s.sessions.Revoke(ctx, token)
}

// CurrentUser loads the user owning an already resolved session
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
