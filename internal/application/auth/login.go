package auth

import (
	"context"
	"strings"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

// Login authenticates a user and issues a token.
// IMPORTANT: must not leak whether the username exists (avoid user enumeration).
func (s *Service) Login(ctx context.Context, username, password string) (AuthResult, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return AuthResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		// Hide not-found behind invalid credentials. Store failures are not
		// an authentication outcome and must surface as-is.
		if domain.Is(err, "user_not_found") {
			return AuthResult{}, domain.ErrInvalidCredentials()
		}
		return AuthResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return AuthResult{}, domain.ErrInvalidCredentials()
	}

	tok, err := s.issueToken(u)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: u, Token: tok}, nil
}
