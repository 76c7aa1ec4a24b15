package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

func (s *Service) Register(ctx context.Context, username, email, password string, role domain.Role) (AuthResult, error) {
	username = strings.TrimSpace(username)
	// Email normalization happens here and nowhere else, so both stores see
	// the same value and duplicate detection stays case-insensitive.
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" {
		return AuthResult{}, domain.ErrMissingField("username")
	}
	if email == "" {
		return AuthResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return AuthResult{}, domain.ErrMissingField("password")
	}
	if !domain.IsValidRole(role) {
		return AuthResult{}, domain.ErrInvalidRole(role.String())
	}
	if role == domain.RoleAdmin && !s.allowAdminSignup {
		return AuthResult{}, domain.ErrInvalidField("role", "admin self-registration is disabled")
	}

	exists, err := s.users.Exists(ctx, username, email)
	if err != nil {
		return AuthResult{}, err
	}
	if exists {
		return AuthResult{}, domain.ErrUserAlreadyExists()
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return AuthResult{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return AuthResult{}, err
	}

	tok, err := s.issueToken(created)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: created, Token: tok}, nil
}
