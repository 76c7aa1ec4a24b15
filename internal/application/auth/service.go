package auth

import (
	"time"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner

	tokenTTL         time.Duration
	allowAdminSignup bool
}

type Config struct {
	TokenTTL         time.Duration
	AllowAdminSignup bool
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, cfg Config) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Service{
		users:            users,
		hasher:           hasher,
		signer:           signer,
		tokenTTL:         ttl,
		allowAdminSignup: cfg.AllowAdminSignup,
	}
}

// AuthResult is the common output of register/login.
type AuthResult struct {
	User  domain.User
	Token string
}

func (s *Service) issueToken(u domain.User) (string, error) {
	tok, err := s.signer.SignToken(u.ID, u.Username, u.Role, s.tokenTTL)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return tok, nil
}
